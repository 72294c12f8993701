package template

import (
	"sort"
	"sync"
)

// Template is a named entry in an Evaluator: markup plus an optional
// stylesheet that callers pair with the rendered output.
type Template struct {
	Markup string
	Styles string
}

// HelperFunc is a function invocable from markup via {{name arg1 arg2}}.
// The returned value is converted to a string in the output. A returned
// error aborts the entire render.
type HelperFunc func(args ...any) (any, error)

// RenderFunc evaluates a compiled template against a data context.
type RenderFunc func(data any) (string, error)

// Evaluator renders resume templates against structured data contexts.
// It owns the template and helper registries; hold one instance and pass
// it where rendering is needed rather than sharing process-wide state.
//
// Registration is expected to happen between renders. The registries are
// guarded so concurrent renders are safe, but callers serialize writes.
type Evaluator struct {
	mu        sync.RWMutex
	templates map[string]Template
	helpers   map[string]HelperFunc
}

// New creates an Evaluator with the default helper set pre-registered.
func New() *Evaluator {
	return &Evaluator{
		templates: make(map[string]Template),
		helpers:   defaultHelpers(),
	}
}

// RegisterTemplate stores t under name, overwriting any existing entry.
// The markup is not validated.
func (e *Evaluator) RegisterTemplate(name string, t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[name] = t
}

// Template returns the template registered under name.
func (e *Evaluator) Template(name string) (Template, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	t, ok := e.templates[name]
	return t, ok
}

// TemplateNames returns the registered template names, sorted for
// consistent ordering.
func (e *Evaluator) TemplateNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterHelper stores fn under name, overwriting any existing helper of
// the same name. Helpers are looked up at render time, so redefining one
// changes the output of templates compiled earlier.
func (e *Evaluator) RegisterHelper(name string, fn HelperFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.helpers[name] = fn
}

// helper looks up a helper by name.
func (e *Evaluator) helper(name string) (HelperFunc, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	fn, ok := e.helpers[name]
	return fn, ok
}

// Render evaluates a template against data and returns the output string.
// If nameOrMarkup matches a registered template name its markup is used;
// otherwise the argument itself is treated as raw markup.
//
// Missing paths, templates and helpers never fail a render; the only
// possible error is one returned by a helper, wrapped in ErrHelper.
func (e *Evaluator) Render(nameOrMarkup string, data any) (string, error) {
	markup := nameOrMarkup
	if t, ok := e.Template(nameOrMarkup); ok {
		markup = t.Markup
	}
	return e.evaluate(markup, data)
}

// Compile returns a reusable render function for markup. The returned
// function captures the Evaluator, not a snapshot of its registries:
// helpers registered after Compile are visible in later invocations.
func (e *Evaluator) Compile(markup string) RenderFunc {
	return func(data any) (string, error) {
		return e.evaluate(markup, data)
	}
}
