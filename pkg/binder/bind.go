package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

const (
	// DefaultMaxBodySize limits JSON bodies (1MB).
	DefaultMaxBodySize = 1 << 20
	// DefaultMaxMemory is the multipart memory budget (10MB).
	DefaultMaxMemory = 10 << 20
	// maxDepth limits nesting produced by bracketed or dotted keys.
	maxDepth = 32
)

const (
	mimeJSON          = "application/json"
	mimeFormURLEncode = "application/x-www-form-urlencoded"
	mimeMultipart     = "multipart/form-data"
)

// Binder decodes requests into records.
type Binder struct {
	maxBodySize int64
	maxMemory   int64
}

// Option configures a Binder.
type Option func(*Binder)

// WithMaxBodySize limits JSON request bodies. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(b *Binder) {
		if n > 0 {
			b.maxBodySize = n
		}
	}
}

// WithMaxMemory sets the in-memory budget for multipart parsing.
// Non-positive values are ignored.
func WithMaxMemory(n int64) Option {
	return func(b *Binder) {
		if n > 0 {
			b.maxMemory = n
		}
	}
}

// New returns a Binder.
func New(opts ...Option) *Binder {
	b := &Binder{maxBodySize: DefaultMaxBodySize, maxMemory: DefaultMaxMemory}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var std = New()

// Bind decodes r with the default limits.
func Bind(r *http.Request) (map[string]any, error) {
	return std.Bind(r)
}

// Bind decodes r according to its method and content type.
func (b *Binder) Bind(r *http.Request) (map[string]any, error) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return Query(r)
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected %s, %s or %s", ErrMissingContentType, mimeJSON, mimeFormURLEncode, mimeMultipart)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
	}

	switch {
	case mediaType == mimeJSON || strings.HasSuffix(mediaType, "+json"):
		return b.JSON(r)
	case mediaType == mimeFormURLEncode, mediaType == mimeMultipart:
		return b.Form(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}
