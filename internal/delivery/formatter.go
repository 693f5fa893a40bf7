package delivery

import (
	"strings"
	"unicode/utf8"
)

// Per-message length limits of the channels that split long bodies
const (
	TelegramMaxMessageLength = 3900 // Telegram allows 4096, keep a margin for the subject
	TelegramMaxSubjectLength = 256
	SMSMaxSegmentLength      = 160
)

// SplitMessage splits message into parts of at most maxLen runes. Parts break
// on line boundaries when possible; a single line longer than maxLen is cut
// into fixed-size chunks. A non-positive maxLen disables splitting.
func SplitMessage(message string, maxLen int) []string {
	if maxLen <= 0 || runeLen(message) <= maxLen {
		return []string{message}
	}

	var parts []string
	var current strings.Builder
	currentLength := 0

	flush := func() {
		if currentLength > 0 {
			parts = append(parts, current.String())
			current.Reset()
			currentLength = 0
		}
	}

	for _, line := range strings.SplitAfter(message, "\n") {
		lineLength := runeLen(line)

		if lineLength > maxLen {
			flush()
			parts = append(parts, chunkRunes(line, maxLen)...)
			continue
		}

		if currentLength+lineLength > maxLen {
			flush()
		}

		current.WriteString(line)
		currentLength += lineLength
	}

	flush()

	return parts
}

func chunkRunes(s string, size int) []string {
	runes := []rune(s)
	chunks := make([]string, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
