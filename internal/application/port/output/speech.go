package output

import "context"

// SpeakerPort renders text as speech. Implementations are responsible for
// sanitizing markup before synthesis; an empty string is a no-op.
type SpeakerPort interface {
	Say(ctx context.Context, text string) error
}
