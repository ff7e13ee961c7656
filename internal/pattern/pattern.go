// Package pattern compiles regular expressions written either as raw RE2
// syntax or in delimited form ("/^b.d$/i"), which is how declaration files
// usually spell them. The most recently used compiled expressions are
// cached.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// ErrInvalidPattern is returned for patterns that do not compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// CacheSize bounds the number of compiled expressions kept in memory.
const CacheSize = 512

var compiled = cache.NewLRU[string, *regexp.Regexp](CacheSize)

// supported delimited-form flags mapped to RE2 flags.
var flags = map[rune]string{
	'i': "i",
	'm': "m",
	's': "s",
	'U': "U",
}

// IsDelimited reports whether p is written as /expr/flags.
func IsDelimited(p string) bool {
	if len(p) < 2 || p[0] != '/' {
		return false
	}
	end := strings.LastIndexByte(p, '/')
	if end <= 0 {
		return false
	}
	for _, r := range p[end+1:] {
		if _, ok := flags[r]; !ok {
			return false
		}
	}
	return true
}

// Compile returns the compiled form of p.
func Compile(p string) (*regexp.Regexp, error) {
	if re, ok := compiled.Get(p); ok {
		return re, nil
	}

	expr := p
	if IsDelimited(p) {
		end := strings.LastIndexByte(p, '/')
		expr = p[1:end]
		if mods := p[end+1:]; mods != "" {
			var b strings.Builder
			for _, r := range mods {
				b.WriteString(flags[r])
			}
			expr = "(?" + b.String() + ")" + expr
		}
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, p, err)
	}
	compiled.Put(p, re)
	return re, nil
}
