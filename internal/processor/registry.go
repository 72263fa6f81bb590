package processor

import (
	"fmt"
	"sync"

	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
)

// Registry maps contracts to their processors.
type Registry struct {
	mu         sync.RWMutex
	processors map[itypes.Contract]EventProcessor
}

func NewRegistry() *Registry {
	return &Registry{processors: make(map[itypes.Contract]EventProcessor)}
}

// Register adds p. Registering a second processor for the same contract is an error.
func (r *Registry) Register(p EventProcessor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.processors[p.Contract()]; exists {
		return fmt.Errorf("processor for %s already registered", p.Contract())
	}
	r.processors[p.Contract()] = p

	return nil
}

func (r *Registry) Get(contract itypes.Contract) (EventProcessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.processors[contract]
	return p, ok
}

// Contracts lists the registered contracts in a stable order.
func (r *Registry) Contracts() []itypes.Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contracts := make([]itypes.Contract, 0, len(r.processors))
	for _, c := range itypes.AllContracts {
		if _, ok := r.processors[c]; ok {
			contracts = append(contracts, c)
		}
	}
	return contracts
}
