package output

import (
	"context"

	"desktop-assistant/internal/domain/entity"
)

// CapabilityPort is one concrete local operation exposed to the dispatch
// engine under a fixed name. Implementations never panic past this boundary;
// failures are returned as errors and rendered into outcomes by the caller.
type CapabilityPort interface {
	Name() entity.ActionName
	Description() string
	Args() []entity.ArgSpec
	Execute(ctx context.Context, args entity.ArgValues) (string, error)
}

// CapabilityRegistry is built once at startup and read-only afterwards.
type CapabilityRegistry interface {
	Register(capability CapabilityPort)
	Get(name entity.ActionName) (CapabilityPort, bool)
	All() []CapabilityPort
	Names() []entity.ActionName
}
