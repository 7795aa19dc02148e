package keymap

// Resolver maps key strings to commands.
type Resolver struct {
	bindings  map[string]Command   // key -> command
	byCommand map[Command][]string // command -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings. When a key appears in
// several bindings the last one wins, so overrides go after defaults.
// Binding a key to CommandNone unbinds it.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings:  make(map[string]Command),
		byCommand: make(map[Command][]string),
	}
	var order []string
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, seen := r.bindings[key]; !seen {
				order = append(order, key)
			}
			r.bindings[key] = b.Command
		}
	}
	for _, key := range order {
		cmd := r.bindings[key]
		if cmd == CommandNone {
			delete(r.bindings, key)
			continue
		}
		r.byCommand[cmd] = append(r.byCommand[cmd], key)
	}
	return r
}

// Resolve returns the command for a key and whether one is bound.
func (r *Resolver) Resolve(key string) (Command, bool) {
	cmd, ok := r.bindings[key]
	return cmd, ok
}

// KeysFor returns the keys bound to a command, in binding order.
func (r *Resolver) KeysFor(cmd Command) []string {
	return r.byCommand[cmd]
}

// Commands returns every bound command in All order.
func (r *Resolver) Commands() []Command {
	var out []Command
	for _, c := range All {
		if len(r.byCommand[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}
