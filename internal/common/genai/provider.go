package genai

import (
	"sync"

	"takeout-recommender/internal/common/logger"
)

// Provider lazily builds a Completer on first use and caches the outcome,
// success or failure, for the process lifetime.
type Provider struct {
	mu      sync.Mutex
	done    bool
	client  Completer
	err     error
	factory func() (Completer, error)
}

func NewProvider(factory func() (Completer, error)) *Provider {
	return &Provider{factory: factory}
}

// NewLazyProvider defers NewClient until the first Get.
func NewLazyProvider(cfg Config, log logger.Logger) *Provider {
	return NewProvider(func() (Completer, error) {
		c, err := NewClient(cfg, log)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

// NewStaticProvider wraps an already built Completer.
func NewStaticProvider(c Completer) *Provider {
	return &Provider{done: true, client: c}
}

// Get returns the cached Completer or the cached initialization error.
func (p *Provider) Get() (Completer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.done {
		p.client, p.err = p.factory()
		p.done = true
	}
	return p.client, p.err
}

// Available reports whether Get would return a Completer.
func (p *Provider) Available() bool {
	_, err := p.Get()
	return err == nil
}
