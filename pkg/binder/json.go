package binder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// JSON decodes a JSON object body. Numbers are kept as json.Number.
func (b *Binder) JSON(r *http.Request) (map[string]any, error) {
	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, b.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrInvalidJSON, err)
	}
	if int64(len(body)) > b.maxBodySize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, b.maxBodySize)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	record, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidJSON)
	}
	return record, nil
}
