package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"desktop-assistant/internal/domain/entity"
)

// actionPattern matches a reply that is exactly one action line:
// ACTION <name> <json-object>, with nothing but whitespace around it.
// (?s) lets the JSON payload span multiple lines.
var actionPattern = regexp.MustCompile(`(?s)^ACTION\s+([a-zA-Z_]+)\s+(\{.*\})$`)

// ActionParser recognizes the action protocol inside model output.
//
// The parser is deliberately fail-soft: surrounding prose, a missing payload,
// or malformed JSON all yield (nil, false) so the caller treats the reply as
// a plain answer. A model degrading from structured output to prose must
// never crash the turn.
type ActionParser struct{}

func NewActionParser() *ActionParser {
	return &ActionParser{}
}

// Parse returns the action request and true iff the entire trimmed text is
// one well-formed action line. No side effects.
func (p *ActionParser) Parse(text string) (*entity.ActionRequest, bool) {
	m := actionPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil, false
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(m[2]), &args); err != nil {
		return nil, false
	}

	return &entity.ActionRequest{
		Name:      entity.ActionName(m[1]),
		Arguments: args,
	}, true
}
