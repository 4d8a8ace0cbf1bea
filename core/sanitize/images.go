package sanitize

import "regexp"

var (
	imgTagRe = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	srcRe    = regexp.MustCompile(`(?i)\bsrc\s*=\s*["']([^"']+)["']`)
	altRe    = regexp.MustCompile(`(?i)\balt\s*=\s*["']([^"']*)["']`)
)

// ExtractImages returns the src of every img element in document
// order. Absence of images yields an empty list, never an error.
func ExtractImages(html string) []string {
	var srcs []string
	for _, tag := range imgTagRe.FindAllString(html, -1) {
		if m := srcRe.FindStringSubmatch(tag); m != nil {
			srcs = append(srcs, m[1])
		}
	}
	return srcs
}

// FirstImage returns the src and alt of the first img element in a
// single paragraph. ok is false when the paragraph has no image.
func FirstImage(paragraph string) (src, alt string, ok bool) {
	for _, tag := range imgTagRe.FindAllString(paragraph, -1) {
		m := srcRe.FindStringSubmatch(tag)
		if m == nil {
			continue
		}
		src = m[1]
		if a := altRe.FindStringSubmatch(tag); a != nil {
			alt = a[1]
		}
		return src, alt, true
	}
	return "", "", false
}
