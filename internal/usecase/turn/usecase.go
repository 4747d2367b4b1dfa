package turn

import (
	"context"
	"fmt"

	"desktop-assistant/internal/application/port/input"
	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/application/service"
	"desktop-assistant/internal/domain/entity"
	"desktop-assistant/internal/usecase/dispatcher"
)

var _ input.TurnHandler = (*UseCase)(nil)

const (
	temperature     = 0.7
	toolResultLabel = "Tool result:"
	deniedAnswer    = "Action denied."
)

// ActionDispatcher executes one validated action request.
type ActionDispatcher interface {
	Dispatch(ctx context.Context, req *entity.ActionRequest) entity.ToolOutcome
}

// UseCase drives one user turn through the transcript and the model:
// model call → parse → either final answer, or one tool round-trip followed
// by a second model call whose reply is unconditionally final. The protocol
// allows at most one tool invocation per turn, so an ACTION line in the
// follow-up reply is intentionally never parsed.
type UseCase struct {
	llm        output.LLMPort
	parser     *service.ActionParser
	dispatcher ActionDispatcher
	transcript *entity.Transcript
	logger     output.LoggerPort
}

func New(
	llm output.LLMPort,
	parser *service.ActionParser,
	dispatch ActionDispatcher,
	transcript *entity.Transcript,
	logger output.LoggerPort,
) *UseCase {
	return &UseCase{
		llm:        llm,
		parser:     parser,
		dispatcher: dispatch,
		transcript: transcript,
		logger:     logger,
	}
}

func (uc *UseCase) HandleTurn(ctx context.Context, userText string) (string, error) {
	uc.transcript.Append(entity.RoleUser, userText)

	reply, err := uc.complete(ctx)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}

	req, ok := uc.parser.Parse(reply)
	if !ok {
		uc.transcript.Append(entity.RoleAssistant, reply)
		return reply, nil
	}

	// Keep the raw action line in the transcript so the model sees its own
	// prior request on the next round.
	uc.transcript.Append(entity.RoleAssistant, reply)
	uc.logger.Info("Action requested", "name", req.Name, "args", req.Arguments)

	outcome := uc.dispatcher.Dispatch(ctx, req)
	if !outcome.Succeeded && outcome.Text == dispatcher.OutcomeDenied {
		uc.transcript.Append(entity.RoleAssistant, deniedAnswer)
		return deniedAnswer, nil
	}

	uc.transcript.Append(entity.RoleUser, fmt.Sprintf("%s\n%s", toolResultLabel, outcome.Text))

	final, err := uc.complete(ctx)
	if err != nil {
		// The tool already ran; degrade to a readable answer instead of
		// losing the turn.
		final = fmt.Sprintf("(model error after tool result: %v)", err)
	}
	uc.transcript.Append(entity.RoleAssistant, final)
	return final, nil
}

func (uc *UseCase) complete(ctx context.Context) (string, error) {
	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages:    uc.transcript.Messages(),
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
