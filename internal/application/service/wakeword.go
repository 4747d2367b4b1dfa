package service

import "strings"

const DefaultWakeWord = "hey jarvis"

// StripWakeWord returns the utterance with the wake word and any separators
// after it removed, and true if the utterance was addressed to the assistant.
// Matching is case-insensitive on the prefix only.
func StripWakeWord(text, wakeWord string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(strings.ToLower(trimmed), strings.ToLower(wakeWord)) {
		return "", false
	}
	rest := trimmed[len(wakeWord):]
	rest = strings.TrimLeft(rest, " ,.-:")
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}

// IsExitPhrase reports whether the utterance asks to end the session.
func IsExitPhrase(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "quit", "exit", "stop":
		return true
	}
	return false
}
