package binder

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
)

var errMalformedKey = errors.New("malformed key")

// expand turns flat form values into a nested record. Keys are processed in
// sorted order so the result does not depend on map iteration.
func expand(values map[string][]string) (map[string]any, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	record := make(map[string]any, len(values))
	for _, key := range keys {
		vals := values[key]
		path, list, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		switch {
		case list || len(vals) > 1:
			items := make([]any, len(vals))
			for i, v := range vals {
				items[i] = v
			}
			record = fieldpath.Set(record, path, items)
		case len(vals) == 1:
			record = fieldpath.Set(record, path, vals[0])
		}
	}
	return record, nil
}

// parseKey converts "a[b][c]", "a.b.c" or a mix of both into a dotted path.
// A trailing "[]" marks a list.
func parseKey(key string) (path string, list bool, err error) {
	if key == "" {
		return "", false, fmt.Errorf("%w: empty key", errMalformedKey)
	}
	if strings.HasSuffix(key, "[]") {
		list = true
		key = strings.TrimSuffix(key, "[]")
	}

	var segments []string
	head, rest, hasBracket := strings.Cut(key, "[")
	segments = append(segments, strings.Split(head, fieldpath.Separator)...)
	for hasBracket {
		var seg string
		var ok bool
		seg, rest, ok = strings.Cut(rest, "]")
		if !ok || seg == "" {
			return "", false, fmt.Errorf("%w: %q", errMalformedKey, key)
		}
		segments = append(segments, seg)
		if rest == "" {
			break
		}
		if !strings.HasPrefix(rest, "[") {
			return "", false, fmt.Errorf("%w: %q", errMalformedKey, key)
		}
		rest = rest[1:]
	}

	for _, s := range segments {
		if s == "" {
			return "", false, fmt.Errorf("%w: %q", errMalformedKey, key)
		}
	}
	if len(segments) > maxDepth {
		return "", false, fmt.Errorf("%w: %q nests deeper than %d levels", errMalformedKey, key, maxDepth)
	}
	return strings.Join(segments, fieldpath.Separator), list, nil
}
