package mode

import "sync"

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Manager holds the current mode and notifies callbacks on change.
type Manager struct {
	mu sync.RWMutex

	current  Mode
	previous Mode

	callbacks []ChangeCallback
}

// NewManager creates a manager in the Hidden mode.
func NewManager() *Manager {
	return &Manager{
		current:  Hidden(),
		previous: Hidden(),
	}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Previous returns the mode before the last change.
func (m *Manager) Previous() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.previous
}

// Kind returns the kind of the current mode.
func (m *Manager) Kind() Kind {
	return m.Current().Kind
}

// Switch changes to next and notifies callbacks outside the lock.
// Switching to an identical mode is a no-op.
func (m *Manager) Switch(next Mode) {
	m.mu.Lock()
	old := m.current
	if old == next {
		m.mu.Unlock()
		return
	}
	m.previous = old
	m.current = next
	callbacks := make([]ChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(old, next)
		}
	}
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// IsKind returns true if the current mode matches any of the given kinds.
func (m *Manager) IsKind(kinds ...Kind) bool {
	cur := m.Kind()
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}
