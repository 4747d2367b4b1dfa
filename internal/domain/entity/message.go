package entity

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one entry of the conversation transcript. Immutable once created.
type Message struct {
	Role    MessageRole
	Content string
}
