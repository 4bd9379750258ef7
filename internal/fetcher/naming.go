package fetcher

import (
	"regexp"
	"strings"
	"unicode"
)

var imageTypePattern = regexp.MustCompile(`image/(jpeg|png|gif|bmp|webp)`)

// ExtensionFor maps a Content-Type header value to a file extension such as
// ".png". Anything outside the jpeg/png/gif/bmp/webp whitelist yields "".
func ExtensionFor(contentType string) string {
	match := imageTypePattern.FindStringSubmatch(contentType)
	if match == nil {
		return ""
	}
	return "." + match[1]
}

// SanitizeName makes a record name safe to use as a single path component.
func SanitizeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(`/\<>:"|?*`, r) {
			return '_'
		}
		return r
	}, name)

	cleaned = strings.Trim(cleaned, " .")
	if cleaned == "" {
		return "_"
	}
	return cleaned
}
