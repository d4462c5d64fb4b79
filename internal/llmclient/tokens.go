package llmclient

import "strings"

// CountTokens provides a rough token count for text, used for the pre-flight
// prompt size check. It counts whitespace-delimited words and never returns
// less than one token per four bytes, since JSON payloads have few spaces.
func CountTokens(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	byBytes := len(text) / 4
	if byBytes == 0 {
		byBytes = 1
	}
	if words > byBytes {
		return words
	}
	return byBytes
}
