package observe

import "sync"

// Visibility is a VisibilitySignal backed by an explicit setter. Hosts
// wire their native visibility event into Set; tests call it directly.
type Visibility struct {
	mu       sync.Mutex
	visible  bool
	handlers map[int]func(bool)
	nextID   int
	hasInit  bool
}

// NewVisibility creates a signal with the given initial state.
func NewVisibility(visible bool) *Visibility {
	return &Visibility{visible: visible, hasInit: true}
}

// Visible returns the current state. A zero-value Visibility reports
// visible, matching a document that has never been hidden.
func (v *Visibility) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible || !v.hasInit
}

// Set updates the state and notifies listeners on change.
func (v *Visibility) Set(visible bool) {
	v.mu.Lock()
	if v.hasInit && v.visible == visible {
		v.mu.Unlock()
		return
	}
	v.visible = visible
	v.hasInit = true
	handlers := make([]func(bool), 0, len(v.handlers))
	for _, h := range v.handlers {
		handlers = append(handlers, h)
	}
	v.mu.Unlock()

	for _, h := range handlers {
		h(visible)
	}
}

// AddListener registers fn for state changes and returns its remover.
func (v *Visibility) AddListener(fn func(visible bool)) (remove func()) {
	if fn == nil {
		return func() {}
	}
	v.mu.Lock()
	if v.handlers == nil {
		v.handlers = make(map[int]func(bool))
	}
	id := v.nextID
	v.nextID++
	v.handlers[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.handlers, id)
		v.mu.Unlock()
	}
}

// Resize is a ResizeSignal backed by an explicit Notify.
type Resize struct {
	mu       sync.Mutex
	handlers map[int]func()
	nextID   int
}

// Notify invokes all registered listeners.
func (r *Resize) Notify() {
	r.mu.Lock()
	handlers := make([]func(), 0, len(r.handlers))
	for _, h := range r.handlers {
		handlers = append(handlers, h)
	}
	r.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}

// AddListener registers fn for resize events and returns its remover.
func (r *Resize) AddListener(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	r.mu.Lock()
	if r.handlers == nil {
		r.handlers = make(map[int]func())
	}
	id := r.nextID
	r.nextID++
	r.handlers[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.handlers, id)
		r.mu.Unlock()
	}
}
