// Package chunk splits reply text into transport-sized parts.
package chunk

// Split cuts text into contiguous, non-overlapping parts of at most bound
// runes, preserving order with no regard for word boundaries. Concatenating
// the parts reconstructs the input exactly. The count is ceil(len/bound);
// the last part may be shorter. A non-positive bound returns the text as a
// single part.
func Split(text string, bound int) []string {
	if text == "" {
		return nil
	}

	if bound <= 0 {
		return []string{text}
	}

	runes := []rune(text)
	parts := make([]string, 0, (len(runes)+bound-1)/bound)

	for start := 0; start < len(runes); start += bound {
		end := start + bound
		if end > len(runes) {
			end = len(runes)
		}

		parts = append(parts, string(runes[start:end]))
	}

	return parts
}
