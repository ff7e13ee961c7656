package binder

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
)

// Form decodes urlencoded and multipart bodies.
func (b *Binder) Form(r *http.Request) (map[string]any, error) {
	var (
		values map[string][]string
		files  map[string][]*multipart.FileHeader
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), mimeMultipart) {
		if err := r.ParseMultipartForm(b.maxMemory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		values = r.MultipartForm.Value
		files = r.MultipartForm.File
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		values = r.PostForm
	}

	record, err := expand(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	if err := addFiles(record, files); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return record, nil
}

// Query decodes the URL query string.
func Query(r *http.Request) (map[string]any, error) {
	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	record, err := expand(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return record, nil
}

// addFiles stores a description of each upload under its field name.
func addFiles(record map[string]any, files map[string][]*multipart.FileHeader) error {
	for key, headers := range files {
		path, list, err := parseKey(key)
		if err != nil {
			return err
		}
		items := make([]any, 0, len(headers))
		for _, fh := range headers {
			items = append(items, map[string]any{
				"filename":     sanitizeFilename(fh.Filename),
				"size":         fh.Size,
				"content_type": fh.Header.Get("Content-Type"),
			})
		}
		if len(items) == 1 && !list {
			fieldpath.Set(record, path, items[0])
		} else {
			fieldpath.Set(record, path, items)
		}
	}
	return nil
}

// sanitizeFilename strips directory components and null bytes.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")
	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
