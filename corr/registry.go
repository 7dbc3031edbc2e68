package corr

import "fmt"

// Method describes one correlation registered for a scenario.
type Method[T any] struct {
	Name string

	// Fn evaluates the correlation. Pure; called only after Missing
	// reports no absent inputs.
	Fn func(T) float64

	// Missing returns the names of mandatory inputs absent from the
	// input set. nil means the method has no mandatory extras.
	Missing func(T) []string

	// Applicable reports whether the method should be offered by the
	// enumerator for the given inputs (optional-input availability).
	// nil means always offered. Evaluation is not gated on this.
	Applicable func(T) bool

	// InRegime reports whether the inputs fall in the flow regime the
	// method covers. nil means every regime.
	InRegime func(T) bool
}

// Registry holds the ranked method catalogue for one physical scenario.
// Registries are package-level static data, built once and never mutated.
type Registry[T any] struct {
	scenario string
	methods  []Method[T]
	index    map[string]int
	pick     func(T) string
}

// New builds a registry with a single fixed default method. Methods are
// given most-recommended first. Panics on a duplicate name or a default
// that is not part of the catalogue.
func New[T any](scenario, defaultName string, methods []Method[T]) *Registry[T] {
	return NewConditional(scenario, []string{defaultName},
		func(T) string { return defaultName }, methods)
}

// NewConditional builds a registry whose default depends on the inputs,
// for scenarios where geometry completeness changes the recommendation.
// Every name pick can return must be listed in defaults so the catalogue
// invariant is checked up front.
func NewConditional[T any](scenario string, defaults []string, pick func(T) string, methods []Method[T]) *Registry[T] {
	r := &Registry[T]{
		scenario: scenario,
		methods:  methods,
		index:    make(map[string]int, len(methods)),
		pick:     pick,
	}
	for i, m := range methods {
		if _, dup := r.index[m.Name]; dup {
			panic(fmt.Sprintf("corr: %s: duplicate method %q", scenario, m.Name))
		}
		if m.Fn == nil {
			panic(fmt.Sprintf("corr: %s: method %q has no function", scenario, m.Name))
		}
		r.index[m.Name] = i
	}
	for _, d := range defaults {
		if _, ok := r.index[d]; !ok {
			panic(fmt.Sprintf("corr: %s: default method %q not registered", scenario, d))
		}
	}
	return r
}

// Scenario returns the registry's scenario name as used in errors.
func (r *Registry[T]) Scenario() string { return r.scenario }

// Names returns every registered method name in canonical rank order.
func (r *Registry[T]) Names() []string {
	names := make([]string, len(r.methods))
	for i, m := range r.methods {
		names[i] = m.Name
	}
	return names
}

// Default resolves the default method name for the given inputs.
func (r *Registry[T]) Default(in T) string { return r.pick(in) }

// Methods returns the applicable method names, most recommended first,
// with the default for these inputs leading the list. With checkRanges
// set, methods outside the flow regime, missing mandatory inputs, or not
// offered for the available optional inputs are dropped; without it the
// full catalogue is returned.
func (r *Registry[T]) Methods(in T, checkRanges bool) []string {
	def := r.pick(in)
	names := make([]string, 0, len(r.methods))
	names = append(names, def)
	for _, m := range r.methods {
		if m.Name == def {
			continue
		}
		if checkRanges {
			if m.Missing != nil && len(m.Missing(in)) > 0 {
				continue
			}
			if m.Applicable != nil && !m.Applicable(in) {
				continue
			}
			if m.InRegime != nil && !m.InRegime(in) {
				continue
			}
		}
		names = append(names, m.Name)
	}
	return names
}

// Evaluate resolves method (empty means the default for these inputs)
// and runs the correlation. An unregistered name fails with the list of
// valid names; a registered method with absent mandatory inputs fails
// naming them.
func (r *Registry[T]) Evaluate(in T, method string) (float64, error) {
	if method == "" {
		method = r.pick(in)
	}
	i, ok := r.index[method]
	if !ok {
		return 0, &UnknownMethodError{Scenario: r.scenario, Name: method, Valid: r.Names()}
	}
	m := r.methods[i]
	if m.Missing != nil {
		if missing := m.Missing(in); len(missing) > 0 {
			return 0, &MissingInputError{Scenario: r.scenario, Method: method, Inputs: missing}
		}
	}
	return m.Fn(in), nil
}
