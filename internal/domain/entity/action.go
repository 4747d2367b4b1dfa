package entity

// ActionName identifies one local capability the model may request.
type ActionName string

const (
	ActionOpenApp        ActionName = "open_app"
	ActionTypeText       ActionName = "type_text"
	ActionPress          ActionName = "press"
	ActionHotkey         ActionName = "hotkey"
	ActionMoveMouse      ActionName = "move_mouse"
	ActionClick          ActionName = "click"
	ActionScroll         ActionName = "scroll"
	ActionScreenshot     ActionName = "screenshot"
	ActionSearchWeb      ActionName = "search_web"
	ActionReadClipboard  ActionName = "read_clipboard"
	ActionWriteClipboard ActionName = "write_clipboard"
	ActionSystemCommand  ActionName = "system_command"
)

func (a ActionName) String() string {
	return string(a)
}

// ActionRequest is the parsed form of one ACTION line. Transient: it is
// consumed by the dispatcher immediately and never retained.
type ActionRequest struct {
	Name      ActionName
	Arguments map[string]any
}

// ToolOutcome is the rendered result of dispatching an action: either the
// capability's output, a failure description, or the operator's denial.
type ToolOutcome struct {
	Succeeded bool
	Text      string
}
