package bootstrap

import (
	"sync"

	"cubeview/quarkgl"
)

// MaterialState is the lifecycle state of a PendingMaterial.
type MaterialState int

const (
	MaterialLoading MaterialState = iota
	MaterialReady
	MaterialFailed
)

func (s MaterialState) String() string {
	switch s {
	case MaterialLoading:
		return "loading"
	case MaterialReady:
		return "ready"
	case MaterialFailed:
		return "failed"
	}
	return "unknown"
}

// PendingMaterial tracks one asynchronous material construction. It moves
// from Loading to Ready or Failed exactly once and is immutable afterwards.
type PendingMaterial struct {
	VertexURL   string
	FragmentURL string

	mu       sync.Mutex
	state    MaterialState
	material quarkgl.Material
	err      error
	done     chan struct{}
}

func newPendingMaterial(vertexURL, fragmentURL string) *PendingMaterial {
	return &PendingMaterial{
		VertexURL:   vertexURL,
		FragmentURL: fragmentURL,
		done:        make(chan struct{}),
	}
}

// State returns the current state.
func (p *PendingMaterial) State() MaterialState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Result returns the material once Ready, or the error once Failed. While
// Loading both are nil.
func (p *PendingMaterial) Result() (quarkgl.Material, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.material, p.err
}

// Done is closed when the state leaves Loading.
func (p *PendingMaterial) Done() <-chan struct{} { return p.done }

func (p *PendingMaterial) resolve(m quarkgl.Material) bool {
	return p.settle(MaterialReady, m, nil)
}

func (p *PendingMaterial) fail(err error) bool {
	return p.settle(MaterialFailed, nil, err)
}

func (p *PendingMaterial) settle(s MaterialState, m quarkgl.Material, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != MaterialLoading {
		return false
	}
	p.state = s
	p.material = m
	p.err = err
	close(p.done)
	return true
}
