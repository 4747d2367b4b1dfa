package dispatcher

import (
	"context"
	"fmt"

	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/application/service"
	"desktop-assistant/internal/domain/entity"
)

const maxOutcomeLen = 20000

// OutcomeUnknownAction and OutcomeDenied are the fixed outcome texts the turn
// controller and the model can rely on.
const (
	OutcomeUnknownAction = "unknown action"
	OutcomeDenied        = "denied"
)

// UseCase validates a parsed action against the registry, applies the
// confirmation policy and invokes the capability. It never propagates a
// fault: every failure mode is rendered as a ToolOutcome so one failing tool
// cannot terminate the session.
type UseCase struct {
	registry  output.CapabilityRegistry
	policy    *service.ConfirmationPolicy
	confirmer output.ConfirmerPort
	logger    output.LoggerPort
}

func New(
	registry output.CapabilityRegistry,
	policy *service.ConfirmationPolicy,
	confirmer output.ConfirmerPort,
	logger output.LoggerPort,
) *UseCase {
	return &UseCase{
		registry:  registry,
		policy:    policy,
		confirmer: confirmer,
		logger:    logger,
	}
}

func (uc *UseCase) Dispatch(ctx context.Context, req *entity.ActionRequest) entity.ToolOutcome {
	capability, ok := uc.registry.Get(req.Name)
	if !ok {
		uc.logger.Warn("Unknown action requested", "name", req.Name)
		return entity.ToolOutcome{Succeeded: false, Text: OutcomeUnknownAction}
	}

	args, err := entity.CoerceArguments(capability.Args(), req.Arguments)
	if err != nil {
		uc.logger.Warn("Argument coercion failed", "name", req.Name, "error", err)
		return entity.ToolOutcome{Succeeded: false, Text: fmt.Sprintf("invalid arguments: %v", err)}
	}

	if uc.policy.RequiresConfirmation(req.Name) {
		prompt := fmt.Sprintf("Assistant wants to run: %s %v", req.Name, req.Arguments)
		if !uc.confirmer.Confirm(ctx, prompt) {
			uc.logger.Info("Action denied by operator", "name", req.Name)
			return entity.ToolOutcome{Succeeded: false, Text: OutcomeDenied}
		}
	}

	uc.logger.Info("Executing action", "name", req.Name, "args", req.Arguments)

	result, err := uc.invoke(ctx, capability, args)
	if err != nil {
		uc.logger.Error("Action failed", "name", req.Name, "error", err)
		return entity.ToolOutcome{Succeeded: false, Text: err.Error()}
	}

	if len(result) > maxOutcomeLen {
		result = result[:maxOutcomeLen] + "\n... (truncated)"
	}

	uc.logger.Debug("Action completed", "name", req.Name, "resultLen", len(result))
	return entity.ToolOutcome{Succeeded: true, Text: result}
}

// invoke shields the session from a misbehaving capability: a panic below the
// port boundary is converted into an ordinary error.
func (uc *UseCase) invoke(ctx context.Context, capability output.CapabilityPort, args entity.ArgValues) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("capability %s panicked: %v", capability.Name(), r)
		}
	}()
	return capability.Execute(ctx, args)
}
