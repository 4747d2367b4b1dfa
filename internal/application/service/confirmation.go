package service

import "desktop-assistant/internal/domain/entity"

// destructiveActions are gated behind operator approval on every invocation.
// This classification is fixed configuration, not derived at runtime.
var destructiveActions = map[entity.ActionName]struct{}{
	"shutdown":    {},
	"restart":     {},
	"delete_file": {},
}

// ConfirmationPolicy decides which actions need interactive approval before
// they execute.
type ConfirmationPolicy struct{}

func NewConfirmationPolicy() *ConfirmationPolicy {
	return &ConfirmationPolicy{}
}

// RequiresConfirmation reports whether name must be approved by the operator.
// system_command is always gated, independently of the destructive set:
// arbitrary shell execution is never allowed through unattended.
func (p *ConfirmationPolicy) RequiresConfirmation(name entity.ActionName) bool {
	if name == entity.ActionSystemCommand {
		return true
	}
	_, destructive := destructiveActions[name]
	return destructive
}
