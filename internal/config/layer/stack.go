package layer

import (
	"sort"
	"sync"
)

// Stack holds at most one layer per source and merges them in priority
// order.
type Stack struct {
	mu     sync.RWMutex
	layers []*Layer // sorted by priority (ascending)
}

// NewStack creates a stack from layers. Later layers with the same
// source replace earlier ones.
func NewStack(layers ...*Layer) *Stack {
	s := &Stack{}
	for _, l := range layers {
		s.Put(l)
	}
	return s
}

// Put adds l, replacing any layer from the same source.
func (s *Stack) Put(l *Layer) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.layers {
		if existing.Source == l.Source {
			s.layers[i] = l
			return
		}
	}
	s.layers = append(s.layers, l)
	sort.SliceStable(s.layers, func(i, j int) bool {
		return s.layers[i].Source.Priority() < s.layers[j].Source.Priority()
	})
}

// Layer returns the layer from source, if any.
func (s *Stack) Layer(source Source) (*Layer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.layers {
		if l.Source == source {
			return l, true
		}
	}
	return nil, false
}

// Layers returns the layers in merge order.
func (s *Stack) Layers() []*Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Merge combines all layers into a new map.
func (s *Stack) Merge() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]any)
	for _, l := range s.layers {
		result = DeepMerge(result, l.Data)
	}
	return result
}

// Origin reports which source provides the effective value at path.
func (s *Stack) Origin(path string) (Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.layers) - 1; i >= 0; i-- {
		if _, ok := GetByPath(s.layers[i].Data, path); ok {
			return s.layers[i].Source, true
		}
	}
	return 0, false
}
