package values

import "strings"

// ConstantName derives the conventional constant name for a symbolic
// value: kebab-case segments upper-cased and joined with underscores, so
// "align-left" becomes "ALIGN_LEFT". The transform is the documented
// contract between symbol spelling and constant tables; explicit value
// bindings are preferred wherever they exist, since a typo here fails only
// at resolution time.
func ConstantName(symbol string) string {
	return strings.ToUpper(strings.ReplaceAll(symbol, "-", "_"))
}

// KeywordName derives the conventional element keyword for a native type
// name: camel-case humps lowered and joined with dashes, so "TextField"
// becomes "text-field". Code generators use it to propose keywords;
// registrations are free to override.
func KeywordName(typeName string) string {
	var b strings.Builder
	for i, r := range typeName {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SetterName derives the conventional setter name for an attribute:
// kebab-case segments capitalized behind a "Set" prefix, so "text-size"
// becomes "SetTextSize".
func SetterName(attribute string) string {
	var b strings.Builder
	b.WriteString("Set")
	for _, seg := range strings.Split(attribute, "-") {
		if seg == "" {
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}
