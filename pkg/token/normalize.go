package token

import "strings"

// Normalize canonicalizes an arbitrary token name into a stable lowercase
// hyphenated identifier usable as a CSS custom-property name:
// "Color/Primary/500" -> "color-primary-500", "spacing.lg" -> "spacing-lg".
//
// The function is total (never fails, empty input yields "") and idempotent:
// Normalize(Normalize(x)) == Normalize(x) for every input.
func Normalize(name string) string {
	name = strings.ToLower(name)

	var sb strings.Builder
	sb.Grow(len(name))

	lastHyphen := false
	for _, r := range name {
		switch {
		case r == '/' || r == '.' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-':
			// Path separators, whitespace runs, and existing hyphens all
			// collapse to a single hyphen.
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
			lastHyphen = false
		default:
			// Anything outside [a-z0-9-] is stripped.
		}
	}

	return strings.Trim(sb.String(), "-")
}

// Segments splits a normalized name on hyphens, dropping empty parts. Used by
// the matcher's segment-overlap scoring.
func Segments(normalized string) []string {
	if normalized == "" {
		return nil
	}
	parts := strings.Split(normalized, "-")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
