package keymap

import "slices"

// Resolver answers which action a key triggers. A key shared by several
// contexts resolves to the action of its first binding.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action, len(bindings)),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, taken := r.actions[key]; !taken {
				r.actions[key] = b.Action
			}
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the bound action, or "" for an unbound key.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor lists the keys of an action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}
