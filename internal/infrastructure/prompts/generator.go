package prompts

import (
	"bytes"
	"strings"
	"text/template"

	"desktop-assistant/internal/application/port/output"
)

const systemPromptTemplate = `You are a helpful desktop AI assistant.
You can speak any language the user uses.
You have the ability to request the host program to execute actions on the user's PC.

WHEN you want to execute ANY action on the user's PC, you MUST respond with EXACTLY ONE line:
ACTION <action_name> <json_args>

Examples:
ACTION open_app {"name":"notepad"}
ACTION type_text {"text":"Hello from your assistant."}
ACTION hotkey {"keys":["ctrl","s"]}
ACTION search_web {"query":"Latest weather in New Delhi"}
ACTION screenshot {"path":"./screenshot.png"}
ACTION read_clipboard {}

Available actions:
{{- range .Capabilities}}
- {{.Name}}: {{.Description}}
{{- end}}

Rules:
1) 'action_name' must be one of: {{.Names}}.
2) 'json_args' must be valid JSON, no backticks.
3) For multiple key presses with modifiers, use 'hotkey'.
4) Only use actions when you truly need them; otherwise just answer normally.
`

type CapabilityInfo struct {
	Name        string
	Description string
}

type systemPromptData struct {
	Capabilities []CapabilityInfo
	Names        string
}

// GenerateSystemPrompt renders the behavioral contract for the model from
// the live registry, so the prompt can never drift from what is dispatchable.
func GenerateSystemPrompt(registry output.CapabilityRegistry) (string, error) {
	capabilities := registry.All()

	infos := make([]CapabilityInfo, 0, len(capabilities))
	names := make([]string, 0, len(capabilities))
	for _, c := range capabilities {
		infos = append(infos, CapabilityInfo{
			Name:        c.Name().String(),
			Description: c.Description(),
		})
		names = append(names, c.Name().String())
	}

	tmpl, err := template.New("system").Parse(systemPromptTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, systemPromptData{
		Capabilities: infos,
		Names:        strings.Join(names, ", "),
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
