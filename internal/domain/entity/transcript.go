package entity

// Transcript is the ordered, append-only conversation history shared across
// model calls within one process run. The first message is always the system
// prompt; later messages are only ever appended, never reordered or rewritten.
type Transcript struct {
	messages []Message
}

// NewTranscript creates a transcript seeded with the system prompt.
func NewTranscript(systemPrompt string) *Transcript {
	return &Transcript{
		messages: []Message{{Role: RoleSystem, Content: systemPrompt}},
	}
}

func (t *Transcript) Append(role MessageRole, content string) {
	t.messages = append(t.messages, Message{Role: role, Content: content})
}

// Messages returns a copy of the history so callers cannot mutate it in place.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recent message. The second return is false only for a
// zero-value Transcript, which never occurs when built via NewTranscript.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}
