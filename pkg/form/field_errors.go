package form

// Errors accumulates validation messages per field. Fields keep the order
// of their first message and messages keep insertion order.
// The zero value is ready to use.
type Errors struct {
	fields   []string
	messages map[string][]string
}

// NewErrors returns an empty collector.
func NewErrors() *Errors {
	return &Errors{messages: make(map[string][]string)}
}

// Add appends message to field.
func (e *Errors) Add(field, message string) {
	if e.messages == nil {
		e.messages = make(map[string][]string)
	}
	if _, ok := e.messages[field]; !ok {
		e.fields = append(e.fields, field)
	}
	e.messages[field] = append(e.messages[field], message)
}

// Reset removes every message.
func (e *Errors) Reset() {
	e.fields = nil
	e.messages = make(map[string][]string)
}

// ResetField removes the messages of field.
func (e *Errors) ResetField(field string) {
	if _, ok := e.messages[field]; !ok {
		return
	}
	delete(e.messages, field)
	for i, f := range e.fields {
		if f == field {
			e.fields = append(e.fields[:i:i], e.fields[i+1:]...)
			break
		}
	}
}

// HasAny reports whether any field has a message.
func (e *Errors) HasAny() bool {
	for _, msgs := range e.messages {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// Has reports whether field has at least one message.
func (e *Errors) Has(field string) bool {
	return len(e.messages[field]) > 0
}

// Get returns a copy of the messages of field.
func (e *Errors) Get(field string) []string {
	msgs := e.messages[field]
	if len(msgs) == 0 {
		return []string{}
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// All returns a copy of every field's messages.
func (e *Errors) All() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for _, f := range e.fields {
		out[f] = e.Get(f)
	}
	return out
}

// Fields returns the fields with messages in first-error order.
func (e *Errors) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// First returns the first message of field.
func (e *Errors) First(field string) (string, bool) {
	msgs := e.messages[field]
	if len(msgs) == 0 {
		return "", false
	}
	return msgs[0], true
}

// FirstErrors returns the first message of every field that has one.
func (e *Errors) FirstErrors() map[string]string {
	out := make(map[string]string, len(e.fields))
	for _, f := range e.fields {
		if msg, ok := e.First(f); ok {
			out[f] = msg
		}
	}
	return out
}

// Err returns the collected messages as a ValidationError, or nil when
// there are none.
func (e *Errors) Err() error {
	if !e.HasAny() {
		return nil
	}
	ve := NewValidationError()
	for _, f := range e.fields {
		for _, msg := range e.messages[f] {
			ve.Add(f, msg)
		}
	}
	return ve
}
