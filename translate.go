package langsync

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([^{}\s]+)\s*\}\}`)

// Lookup resolves a dot-separated key path ("common.buttons.save") inside
// the dictionary. It returns false when any segment is missing or the final
// value is not a string.
func (d Dictionary) Lookup(key string) (string, bool) {
	var current any = map[string]any(d)
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = m[part]
		if !ok {
			return "", false
		}
	}
	s, ok := current.(string)
	return s, ok
}

// T returns the translation for key with {{param}} placeholders substituted.
// A missing key returns the key itself, so untranslated strings stay visible
// rather than rendering blank.
func (d Dictionary) T(key string, params map[string]string) string {
	s, ok := d.Lookup(key)
	if !ok {
		return key
	}
	return Interpolate(s, params)
}

// Interpolate substitutes {{name}} placeholders in s with values from
// params. Placeholders without a matching param are left untouched.
func Interpolate(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		if v, ok := params[name]; ok {
			return v
		}
		return match
	})
}
