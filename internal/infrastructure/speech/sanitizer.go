package speech

import (
	"regexp"
	"strings"
)

// Patterns stripped before synthesis: spoken output must carry none of the
// protocol or markup the model writes for the screen.
var (
	actionLinePattern   = regexp.MustCompile(`(?m)^ACTION\s+[a-zA-Z_]+\s+\{.*\}\s*$`)
	codeBlockPattern    = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern   = regexp.MustCompile("`([^`]*)`")
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+`)
	emojiPattern        = regexp.MustCompile(`[\x{10000}-\x{10FFFF}]`)
	symbolPattern       = regexp.MustCompile("[*_#>\\[\\]{}|~^`]")
	spacePattern        = regexp.MustCompile(`\s+`)
)

// Sanitize prepares model output for text-to-speech: action lines, code,
// links, URLs, emoji and markdown symbols are removed, whitespace collapsed.
func Sanitize(text string) string {
	text = actionLinePattern.ReplaceAllString(text, "")
	text = codeBlockPattern.ReplaceAllString(text, "")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	text = markdownLinkPattern.ReplaceAllString(text, "$1")
	text = urlPattern.ReplaceAllString(text, "")
	text = emojiPattern.ReplaceAllString(text, "")
	text = symbolPattern.ReplaceAllString(text, " ")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
