package citydetail

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase turns a URL path segment like "porto%20alegre" or "new-york"
// into a display name. Hyphens and underscores are treated as word breaks.
func TitleCase(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		decoded = value
	}
	cleaned := strings.TrimSpace(strings.NewReplacer("-", " ", "_", " ").Replace(decoded))

	parts := strings.Fields(cleaned)
	if len(parts) == 0 {
		return cleaned
	}
	for i, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		parts[i] = string(unicode.ToUpper(r)) + part[size:]
	}
	return strings.Join(parts, " ")
}
