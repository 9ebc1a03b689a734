// Package matching implements the deterministic scoring rubric that
// evaluates job postings against the fixed candidate profile.
package matching

import "strings"

// maxAcronymLen is the keyword length at or below which ASCII keywords are
// matched on word boundaries instead of as raw substrings. Without this,
// "AI" would match inside "said" and "ML" inside "html".
const maxAcronymLen = 3

// ContainsKeyword reports whether text contains keyword, case-insensitive.
// Korean keywords and longer English terms match as substrings; short ASCII
// acronyms require word boundaries.
func ContainsKeyword(text, keyword string) bool {
	t := strings.ToLower(text)
	k := strings.ToLower(keyword)
	if k == "" {
		return false
	}
	if len(k) > maxAcronymLen || !isASCIILetters(k) {
		return strings.Contains(t, k)
	}
	return containsWord(t, k)
}

// MatchKeywords returns the subset of keywords found in text, preserving
// the keyword list's order so results are deterministic.
func MatchKeywords(text string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if ContainsKeyword(text, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// containsWord finds needle in haystack at positions where it is not part
// of a larger ASCII word.
func containsWord(haystack, needle string) bool {
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(needle)
		if !isWordByte(haystack, start-1) && !isWordByte(haystack, end) {
			return true
		}
		from = start + 1
	}
}

func isWordByte(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
