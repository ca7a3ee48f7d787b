// Package template implements flat named-placeholder substitution for
// artifact templates.
//
// Templates reference values as {name}. Literal braces are written doubled
// ({{ and }}), which lets GitHub Actions expressions like
// ${{ secrets.NAME }} pass through unchanged. There is no control flow:
// generators pre-compute every conditional or repeated block into a plain
// string before the single substitution pass.
//
// A placeholder with no supplied value is an authoring defect in the
// calling generator. Render fails with ErrCodeMissingPlaceholder and
// returns no partial output.
package template

import (
	"strings"

	"github.com/pipesmith/pipesmith/pkg/errors"
)

// Render substitutes vars into tmpl and returns the result.
//
// On any error the returned string is empty; callers never receive
// partially substituted content.
func Render(tmpl string, vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return "", errors.New(errors.ErrCodeMalformedTemplate, "unterminated placeholder at offset %d", i)
			}
			name := tmpl[i+1 : i+end]
			if !validName(name) {
				return "", errors.New(errors.ErrCodeMalformedTemplate, "invalid placeholder %q at offset %d", name, i)
			}
			val, ok := vars[name]
			if !ok {
				return "", errors.New(errors.ErrCodeMissingPlaceholder, "no value for placeholder %q", name)
			}
			b.WriteString(val)
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", errors.New(errors.ErrCodeMalformedTemplate, "unmatched '}' at offset %d", i)
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), nil
}

// validName reports whether name is a well-formed placeholder identifier
// (non-empty, ASCII letters, digits, and underscores).
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
