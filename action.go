package datagrid

import "slices"

// ActionHandler performs an action.
type ActionHandler func()

// ActionCondition returns true if the action can be executed.
type ActionCondition func() bool

// ActionEntry is a registered action: a user-visible name bound to a
// zero-argument call into the grid.
type ActionEntry struct {
	Name      string          // Menu title; "/" separates submenu levels
	Handler   ActionHandler   // Called on Invoke
	Condition ActionCondition // Optional: must return true to execute (nil = always)
	Checked   func() bool     // Optional: checkbox state for the presentation layer
}

// Enabled reports whether the action can run now.
func (a ActionEntry) Enabled() bool {
	return a.Handler != nil && (a.Condition == nil || a.Condition())
}

// IsChecked reports the action's checkbox state; false when it has none.
func (a ActionEntry) IsChecked() bool {
	return a.Checked != nil && a.Checked()
}

// ActionRegistry is an ordered action table. It owns no presentation; a
// host builds its menu from Entries and calls Invoke.
type ActionRegistry struct {
	actions []ActionEntry
}

// NewActionRegistry creates an empty registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{actions: make([]ActionEntry, 0, 16)}
}

// Register adds an action. Registering an existing name replaces it in place.
func (r *ActionRegistry) Register(name string, handler ActionHandler) {
	r.RegisterEntry(ActionEntry{Name: name, Handler: handler})
}

// RegisterWithCondition adds an action with a condition that must be true to execute.
func (r *ActionRegistry) RegisterWithCondition(name string, handler ActionHandler, condition ActionCondition) {
	r.RegisterEntry(ActionEntry{Name: name, Handler: handler, Condition: condition})
}

// RegisterEntry adds an action with all options.
func (r *ActionRegistry) RegisterEntry(e ActionEntry) {
	if i := r.index(e.Name); i >= 0 {
		r.actions[i] = e
		return
	}
	r.actions = append(r.actions, e)
}

// Invoke runs the named action. Returns false for unknown or disabled
// actions, which are no-ops.
func (r *ActionRegistry) Invoke(name string) bool {
	i := r.index(name)
	if i < 0 {
		return false
	}
	a := r.actions[i]
	if !a.Enabled() {
		return false
	}
	a.Handler()
	return true
}

// Lookup returns the named action.
func (r *ActionRegistry) Lookup(name string) (ActionEntry, bool) {
	i := r.index(name)
	if i < 0 {
		return ActionEntry{}, false
	}
	return r.actions[i], true
}

// Names returns the action names in registration order.
func (r *ActionRegistry) Names() []string {
	names := make([]string, len(r.actions))
	for i, a := range r.actions {
		names[i] = a.Name
	}
	return names
}

// Entries returns a copy of the action table.
func (r *ActionRegistry) Entries() []ActionEntry {
	return slices.Clone(r.actions)
}

// Len returns the number of registered actions.
func (r *ActionRegistry) Len() int { return len(r.actions) }

// Unregister removes an action by name.
func (r *ActionRegistry) Unregister(name string) {
	if i := r.index(name); i >= 0 {
		r.actions = slices.Delete(r.actions, i, i+1)
	}
}

// Clear removes all registered actions.
func (r *ActionRegistry) Clear() {
	r.actions = r.actions[:0]
}

func (r *ActionRegistry) index(name string) int {
	return slices.IndexFunc(r.actions, func(a ActionEntry) bool { return a.Name == name })
}
