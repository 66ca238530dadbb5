package g2p

import "sync"

// MaterialRegistry lists live materials for collaborators that need to walk
// all of them. It does not own the materials: NewMaterial adds, Close removes.
type MaterialRegistry struct {
	mu    sync.Mutex
	items []*Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

func (r *MaterialRegistry) Add(m *Material) {
	if m == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.items {
		if x == m {
			return
		}
	}
	r.items = append(r.items, m)
}

func (r *MaterialRegistry) Remove(m *Material) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, x := range r.items {
		if x == m {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

// Lookup returns the first registered material called name, or nil.
func (r *MaterialRegistry) Lookup(name string) *Material {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.items {
		if x.Name == name {
			return x
		}
	}
	return nil
}

// All returns the registered materials in registration order.
func (r *MaterialRegistry) All() []*Material {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Material, len(r.items))
	copy(out, r.items)
	return out
}

func (r *MaterialRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
