package qa

import (
	"fmt"
	"strings"
)

// maxSummarizedTools caps the number of instruments named in an answer.
// Listing more than three reads badly and inflates answer length.
const maxSummarizedTools = 3

// SummarizeTools renders an instrument list as a short natural-language
// phrase: "a", "a and b", or "a, b, and c". Entries are normalized, trimmed,
// deduplicated (case-sensitive, after normalization) in original order, and
// capped at three; a fourth distinct instrument is never listed.
func SummarizeTools(tools []string) string {
	var clean []string
	seen := make(map[string]struct{})
	for _, t := range tools {
		c := strings.TrimSpace(Normalize(t))
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		clean = append(clean, c)
		if len(clean) >= maxSummarizedTools {
			break
		}
	}

	switch len(clean) {
	case 0:
		return ""
	case 1:
		return clean[0]
	case 2:
		return fmt.Sprintf("%s and %s", clean[0], clean[1])
	default:
		return fmt.Sprintf("%s, %s, and %s", clean[0], clean[1], clean[2])
	}
}
