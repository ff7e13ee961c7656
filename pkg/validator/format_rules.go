package validator

import (
	"net/mail"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/internal/convert"
	"github.com/dmitrymomot/formkit/pkg/form"
)

// Email validates an address using RFC 5322 parsing plus the checks that
// matter for web sign-ups: a bare address and a dotted domain.
func Email(value any, _ form.Params, _ form.Values) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URL passes for absolute URLs with a host. The optional "schemes" list
// restricts the scheme.
func URL(value any, params form.Params, _ form.Values) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	if schemes := params.Strings("schemes"); len(schemes) > 0 {
		return slices.Contains(schemes, strings.ToLower(u.Scheme))
	}
	return true
}

// UUID validates the canonical 36-character form with pre-validation to
// avoid expensive parsing.
func UUID(value any, _ form.Params, _ form.Values) bool {
	s, ok := value.(string)
	if !ok || len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Boolean passes for booleans and their usual spellings (1/0, yes/no, on/off).
func Boolean(value any, _ form.Params, _ form.Values) bool {
	_, ok := convert.Bool(value)
	return ok
}

// Date passes for strings in the "layout" parameter format (Go reference
// layout, default "2006-01-02").
func Date(value any, params form.Params, _ form.Values) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, err := time.Parse(params.String("layout", time.DateOnly), s)
	return err == nil
}
