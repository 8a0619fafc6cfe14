package papergen

import "strings"

// Sanitization is bit-for-bit reproducible: the same reply always yields
// the same bytes, so failures are diagnosable from the audit log alone.

// stripCodeFence removes one fenced code-block wrapper (with optional
// language tag) the service may have put around the reply, then trims
// surrounding whitespace.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := s[len("```"):]
	// Drop the language tag, if any, up to the first newline.
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	} else {
		rest = ""
	}
	rest = strings.TrimSuffix(strings.TrimSpace(rest), "```")
	return strings.TrimSpace(rest)
}

// sanitizeStructured prepares a reply for structured parsing.
func sanitizeStructured(raw []byte) []byte {
	return []byte(stripCodeFence(string(raw)))
}

// sanitizeSubjective prepares a bare-text revision reply: fence strip,
// trim, one leading and one trailing literal quote character removed if
// present, and bold-markup tokens dropped.
func sanitizeSubjective(raw []byte) string {
	s := stripCodeFence(string(raw))

	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = s[1 : len(s)-1]
		}
	}

	s = strings.ReplaceAll(s, "**", "")
	return strings.TrimSpace(s)
}
