// Package binder decodes HTTP request input into a loosely typed record
// (map[string]any) ready for form.Form.SetData.
//
// Bind picks the decoder from the request:
//
//   - GET and HEAD requests bind the query string.
//   - application/json bodies must hold a single object. Numbers are kept as
//     json.Number so no precision is lost before validation.
//   - application/x-www-form-urlencoded and multipart/form-data bodies are
//     expanded into nested records. Both "user.name" and "user[name]" address
//     the same nested field, "tags[]" always produces a list and repeated keys
//     become lists. Uploaded files are described by a record holding the
//     sanitized filename, size and content type.
//
//	record, err := binder.Bind(r)
//	if err != nil {
//	    // errors.Is(err, binder.ErrUnsupportedMediaType) and friends
//	}
//	err = f.SetData(record)
package binder
