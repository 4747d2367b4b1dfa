package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/application/service"
	"desktop-assistant/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                        {}
func (nopLogger) Info(string, ...any)                         {}
func (nopLogger) Warn(string, ...any)                         {}
func (nopLogger) Error(string, ...any)                        {}
func (l nopLogger) WithField(string, any) output.LoggerPort   { return l }
func (nopLogger) Close() error                                { return nil }

type fakeConfirmer struct {
	approve bool
	prompts []string
}

func (f *fakeConfirmer) Confirm(ctx context.Context, prompt string) bool {
	f.prompts = append(f.prompts, prompt)
	return f.approve
}

type spyCapability struct {
	name        entity.ActionName
	specs       []entity.ArgSpec
	invocations int
	lastArgs    entity.ArgValues
	err         error
	doPanic     bool
}

func (s *spyCapability) Name() entity.ActionName { return s.name }
func (s *spyCapability) Description() string     { return "spy" }
func (s *spyCapability) Args() []entity.ArgSpec  { return s.specs }
func (s *spyCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	s.invocations++
	s.lastArgs = args
	if s.doPanic {
		panic("boom")
	}
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("Opened %s.", args.String("name")), nil
}

func newTestDispatcher(capabilities []*spyCapability, approve bool) (*UseCase, *fakeConfirmer) {
	registry := service.NewCapabilityRegistry()
	for _, c := range capabilities {
		registry.Register(c)
	}
	confirmer := &fakeConfirmer{approve: approve}
	return New(registry, service.NewConfirmationPolicy(), confirmer, nopLogger{}), confirmer
}

func TestDispatch_Success(t *testing.T) {
	spy := &spyCapability{
		name:  entity.ActionOpenApp,
		specs: []entity.ArgSpec{{Key: "name", Kind: entity.ArgString, Default: ""}},
	}
	uc, confirmer := newTestDispatcher([]*spyCapability{spy}, true)

	outcome := uc.Dispatch(context.Background(), &entity.ActionRequest{
		Name:      entity.ActionOpenApp,
		Arguments: map[string]any{"name": "notepad"},
	})

	if !outcome.Succeeded {
		t.Fatalf("expected success, got %q", outcome.Text)
	}
	if !strings.Contains(outcome.Text, "notepad") {
		t.Errorf("outcome should reference notepad: %q", outcome.Text)
	}
	if spy.invocations != 1 {
		t.Errorf("expected exactly one invocation, got %d", spy.invocations)
	}
	if len(confirmer.prompts) != 0 {
		t.Errorf("open_app is ordinary, no confirmation expected: %v", confirmer.prompts)
	}
}

func TestDispatch_UnknownAction(t *testing.T) {
	uc, _ := newTestDispatcher(nil, true)

	outcome := uc.Dispatch(context.Background(), &entity.ActionRequest{
		Name:      "bogus_action",
		Arguments: map[string]any{},
	})

	if outcome.Succeeded {
		t.Fatal("unknown action must fail")
	}
	if outcome.Text != OutcomeUnknownAction {
		t.Errorf("expected %q, got %q", OutcomeUnknownAction, outcome.Text)
	}
}

func TestDispatch_CoercionFailure(t *testing.T) {
	spy := &spyCapability{
		name:  entity.ActionMoveMouse,
		specs: []entity.ArgSpec{{Key: "x", Kind: entity.ArgInt, Default: 0}},
	}
	uc, _ := newTestDispatcher([]*spyCapability{spy}, true)

	outcome := uc.Dispatch(context.Background(), &entity.ActionRequest{
		Name:      entity.ActionMoveMouse,
		Arguments: map[string]any{"x": "over there"},
	})

	if outcome.Succeeded {
		t.Fatal("coercion failure must produce a failed outcome")
	}
	if !strings.Contains(outcome.Text, "invalid arguments") {
		t.Errorf("expected invalid-arguments text, got %q", outcome.Text)
	}
	if spy.invocations != 0 {
		t.Error("capability must not run with uncoercible arguments")
	}
}

func TestDispatch_SystemCommandDenied(t *testing.T) {
	spy := &spyCapability{
		name:  entity.ActionSystemCommand,
		specs: []entity.ArgSpec{{Key: "cmd", Kind: entity.ArgString, Default: ""}},
	}
	uc, confirmer := newTestDispatcher([]*spyCapability{spy}, false)

	outcome := uc.Dispatch(context.Background(), &entity.ActionRequest{
		Name:      entity.ActionSystemCommand,
		Arguments: map[string]any{"cmd": "rm -rf /"},
	})

	if outcome.Succeeded {
		t.Fatal("denied action must fail")
	}
	if outcome.Text != OutcomeDenied {
		t.Errorf("expected %q, got %q", OutcomeDenied, outcome.Text)
	}
	if spy.invocations != 0 {
		t.Error("denied capability must never be invoked")
	}
	if len(confirmer.prompts) != 1 {
		t.Errorf("expected exactly one confirmation prompt, got %d", len(confirmer.prompts))
	}
}

func TestDispatch_SystemCommandApproved(t *testing.T) {
	spy := &spyCapability{
		name:  entity.ActionSystemCommand,
		specs: []entity.ArgSpec{{Key: "cmd", Kind: entity.ArgString, Default: ""}},
	}
	uc, _ := newTestDispatcher([]*spyCapability{spy}, true)

	outcome := uc.Dispatch(context.Background(), &entity.ActionRequest{
		Name:      entity.ActionSystemCommand,
		Arguments: map[string]any{"cmd": "echo hi"},
	})

	if !outcome.Succeeded {
		t.Fatalf("approved command should run: %q", outcome.Text)
	}
	if spy.invocations != 1 {
		t.Errorf("expected one invocation, got %d", spy.invocations)
	}
}

func TestDispatch_CapabilityErrorBecomesOutcome(t *testing.T) {
	spy := &spyCapability{
		name: entity.ActionTypeText,
		err:  errors.New("typing failed: display locked"),
	}
	uc, _ := newTestDispatcher([]*spyCapability{spy}, true)

	outcome := uc.Dispatch(context.Background(), &entity.ActionRequest{
		Name:      entity.ActionTypeText,
		Arguments: map[string]any{},
	})

	if outcome.Succeeded {
		t.Fatal("capability error must produce a failed outcome")
	}
	if !strings.Contains(outcome.Text, "display locked") {
		t.Errorf("outcome should carry the underlying description: %q", outcome.Text)
	}
}

func TestDispatch_CapabilityPanicIsContained(t *testing.T) {
	spy := &spyCapability{
		name:    entity.ActionScreenshot,
		doPanic: true,
	}
	uc, _ := newTestDispatcher([]*spyCapability{spy}, true)

	outcome := uc.Dispatch(context.Background(), &entity.ActionRequest{
		Name:      entity.ActionScreenshot,
		Arguments: map[string]any{},
	})

	if outcome.Succeeded {
		t.Fatal("panicking capability must produce a failed outcome")
	}
	if !strings.Contains(outcome.Text, "panicked") {
		t.Errorf("expected panic description, got %q", outcome.Text)
	}
}

func TestDispatch_MissingArgumentsUseDefaults(t *testing.T) {
	spy := &spyCapability{
		name: entity.ActionClick,
		specs: []entity.ArgSpec{
			{Key: "button", Kind: entity.ArgString, Default: "left"},
			{Key: "clicks", Kind: entity.ArgInt, Default: 1},
		},
	}
	uc, _ := newTestDispatcher([]*spyCapability{spy}, true)

	uc.Dispatch(context.Background(), &entity.ActionRequest{
		Name:      entity.ActionClick,
		Arguments: map[string]any{},
	})

	if spy.lastArgs.String("button") != "left" || spy.lastArgs.Int("clicks") != 1 {
		t.Errorf("defaults not applied: %v", spy.lastArgs)
	}
}
