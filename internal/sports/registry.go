package sports

import "fmt"

// Registry holds the closed set of sport rule plugins.
type Registry struct {
	order  []string
	sports map[string]Sport
}

// NewRegistry creates the registry with every known sport registered.
func NewRegistry() *Registry {
	r := &Registry{sports: make(map[string]Sport)}
	r.register(Football())
	r.register(Soccer())
	r.register(Baseball())
	r.register(Basketball())
	r.register(Lacrosse())
	return r
}

func (r *Registry) register(s Sport) {
	r.order = append(r.order, s.Name())
	r.sports[s.Name()] = s
}

// Get retrieves a sport by name.
func (r *Registry) Get(name string) (Sport, error) {
	s, ok := r.sports[name]
	if !ok {
		return nil, fmt.Errorf("unknown sport: %s", name)
	}
	return s, nil
}

// Names returns the registered sport names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
