package settings

import "sync"

// Provider hands out the single Store of a process. The store is created on
// the first call to Store; creation is guarded so concurrent first callers
// all receive the same instance.
//
// A Provider is built once by the composition root and passed to whoever
// needs settings, instead of being reached through a package global.
type Provider struct {
	once  sync.Once
	store *Store
}

// NewProvider returns a provider whose store has not been created yet.
func NewProvider() *Provider {
	return &Provider{}
}

// Store returns the shared store, creating it on first use.
func (p *Provider) Store() *Store {
	p.once.Do(func() {
		p.store = NewStore()
	})
	return p.store
}
