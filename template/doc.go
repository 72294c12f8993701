// Package template implements the resume template evaluator.
//
// Templates are UTF-8 markup strings with embedded double-brace constructs.
// An Evaluator owns two registries, one for named templates and one for
// helper functions, and rewrites markup in four fixed passes:
//
//  1. Loop expansion: {{#each path}}...{{/each}}
//  2. Conditional expansion: {{#if path}}...{{else}}...{{/if}}
//  3. Variable substitution: {{path.to.value}}
//  4. Helper invocation: {{helperName arg1 arg2}}
//
// Loop bodies and conditional branches re-enter the full pipeline, so the
// constructs nest inside each other.
//
// # Syntax
//
// Variables are dotted paths resolved against the data context:
//
//	{{personal.name}} — {{personal.title}}
//
// Iteration binds the current item as "this" along with "index", "first"
// and "last":
//
//	{{#each experience}}{{this.company}}{{#if last}}.{{else}}, {{/if}}{{/each}}
//
// Conditionals use the JavaScript notion of truthiness: false, zero, the
// empty string and absent values select the else branch; everything else,
// including empty lists, selects the then branch:
//
//	{{#if summary}}<p>{{summary}}</p>{{/if}}
//
// Helpers are called with whitespace-separated arguments. Double-quoted
// spans are string literals, bare true/false are booleans, numeric tokens
// are numbers, and anything else is resolved as a data path:
//
//	{{truncate bio 140}}
//	{{join skills " | "}}
//
// # Resolution misses
//
// Missing data never fails a render. A missing path yields an empty string
// (or an empty region for blocks), an unregistered template name is treated
// as raw markup, and an unregistered helper call is left in the output
// verbatim. The only error a render can surface is one returned by a helper
// itself.
//
// Unterminated block markers are not detected: an open marker with no
// matching close is passed through as literal text. Callers that need
// validation must do it themselves.
//
// # Example
//
//	ev := template.New()
//	ev.RegisterTemplate("modern", template.Template{Markup: "<h1>{{personal.name}}</h1>"})
//	out, err := ev.Render("modern", map[string]any{
//		"personal": map[string]any{"name": "Ada Lovelace"},
//	})
//	// out: "<h1>Ada Lovelace</h1>"
package template
