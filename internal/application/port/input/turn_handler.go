package input

import "context"

// TurnHandler runs one full user turn: at most two model calls and at most
// one capability invocation, returning the final answer for the turn.
type TurnHandler interface {
	HandleTurn(ctx context.Context, userText string) (string, error)
}
