package predicate

import "fmt"

// Polarity tells what a predicate's truth value implies about its receiver.
type Polarity int

const (
	// PolarityNone marks names the vocabulary knows nothing about.
	PolarityNone Polarity = iota

	// PolarityTruthy predicates are true only when the receiver is non-null
	// and present (non-empty, non-zero, positive).
	PolarityTruthy

	// PolarityFalsy predicates are true only when the receiver is null,
	// empty, zero or negative.
	PolarityFalsy
)

var polarityValueMap = map[Polarity]string{
	PolarityTruthy: "truthy",
	PolarityFalsy:  "falsy",
}

func (p Polarity) String() string {
	v, ok := polarityValueMap[p]
	if !ok {
		return fmt.Sprintf("invalid-polarity(%d)", p)
	}

	return v
}

// MarshalText implements encoding.TextMarshaler.
func (p Polarity) MarshalText() ([]byte, error) {
	v, ok := polarityValueMap[p]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid polarity(%d)", p)
	}

	return []byte(v), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for setting values with
// configs, CLI, etc.
func (p *Polarity) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range polarityValueMap {
		if v == text {
			*p = k
			return nil
		}
	}

	return fmt.Errorf("unknown predicate polarity %q", text)
}

// Registry is the injected guard vocabulary: predicate name -> polarity
// pairs plus the paired-indicator map. Lookups only, no behavior.
type Registry struct {
	polarities map[string]Polarity
	indicators map[string]string
}

// New builds a registry from explicit tables. Both maps are copied; nil
// maps are fine.
func New(polarities map[string]Polarity, indicators map[string]string) *Registry {
	r := &Registry{
		polarities: make(map[string]Polarity, len(polarities)),
		indicators: make(map[string]string, len(indicators)),
	}

	for name, pol := range polarities {
		if pol == PolarityNone {
			continue
		}
		r.polarities[name] = pol
	}
	for ind, dep := range indicators {
		r.indicators[ind] = dep
	}

	return r
}

// PolarityOf returns the registered polarity of a predicate name, or
// PolarityNone for unknown names.
func (r *Registry) PolarityOf(name string) Polarity {
	if r == nil {
		return PolarityNone
	}

	return r.polarities[name]
}

// DependentOf resolves an indicator property to the nullable property it
// vouches for on the same receiver, e.g. hasData -> data.
func (r *Registry) DependentOf(indicator string) (string, bool) {
	if r == nil {
		return "", false
	}

	dep, ok := r.indicators[indicator]
	return dep, ok
}
