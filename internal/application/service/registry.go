package service

import (
	"sort"

	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/domain/entity"
)

var _ output.CapabilityRegistry = (*CapabilityRegistryImpl)(nil)

// CapabilityRegistryImpl maps action names to capabilities. All registration
// happens during container construction; afterwards the registry is only
// read, so concurrent lookups need no locking.
type CapabilityRegistryImpl struct {
	capabilities map[entity.ActionName]output.CapabilityPort
}

func NewCapabilityRegistry() *CapabilityRegistryImpl {
	return &CapabilityRegistryImpl{
		capabilities: make(map[entity.ActionName]output.CapabilityPort),
	}
}

func (r *CapabilityRegistryImpl) Register(capability output.CapabilityPort) {
	r.capabilities[capability.Name()] = capability
}

func (r *CapabilityRegistryImpl) Get(name entity.ActionName) (output.CapabilityPort, bool) {
	capability, ok := r.capabilities[name]
	return capability, ok
}

func (r *CapabilityRegistryImpl) All() []output.CapabilityPort {
	result := make([]output.CapabilityPort, 0, len(r.capabilities))
	for _, capability := range r.capabilities {
		result = append(result, capability)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

func (r *CapabilityRegistryImpl) Names() []entity.ActionName {
	result := make([]entity.ActionName, 0, len(r.capabilities))
	for name := range r.capabilities {
		result = append(result, name)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}
