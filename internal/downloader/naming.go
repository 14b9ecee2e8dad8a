package downloader

import (
	"fmt"
	"path"
	"strings"
	"unicode"
)

// maxNameBytes leaves room in a 255-byte filename for
// "_image_<index>_<8 hex><ext>" after the sanitized name.
const maxNameBytes = 200

// SanitizeName makes name safe as a single path segment. Whitespace and
// path or shell-reserved characters become underscores, and the result is
// cut to maxNameBytes on a character boundary.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsSpace(r), unicode.IsControl(r):
			b.WriteRune('_')
		case strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	out := truncateBytes(b.String(), maxNameBytes)
	if strings.Trim(out, ".") == "" {
		return "product"
	}
	return out
}

func truncateBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// last rune start at or before limit
	cut := 0
	for i := range s {
		if i > limit {
			break
		}
		cut = i
	}
	return s[:cut]
}

// ResolveExtension picks the file extension from the URL path, then from the
// declared content type, falling back to .jpg.
func ResolveExtension(urlPath, contentType string) string {
	if ext := strings.ToLower(path.Ext(urlPath)); isPlainExtension(ext) {
		return ext
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "jpg"):
		return ".jpg"
	case strings.Contains(ct, "png"):
		return ".png"
	case strings.Contains(ct, "webp"):
		return ".webp"
	}
	return ".jpg"
}

func isPlainExtension(ext string) bool {
	if len(ext) < 2 || len(ext) > 10 {
		return false
	}
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// BuildFilename renders <folder>_image_<index>_<suffix><ext>.
func BuildFilename(folder string, index int, suffix, ext string) string {
	return fmt.Sprintf("%s_image_%d_%s%s", folder, index, suffix, ext)
}
