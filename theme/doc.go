// Package theme loads named template sets from disk into a template
// Evaluator.
//
// A theme directory contains a manifest.toml naming the set and its
// entries, plus one file per theme: YAML frontmatter between --- delimiters
// (name, description, optional styles reference) followed by the markup
// body. Stylesheets live in sibling files referenced from the frontmatter
// or the manifest.
//
//	---
//	name: modern
//	description: Single-column layout with a teal header
//	styles: modern.css
//	---
//	<h1>{{personal.name}}</h1>
//	...
//
// LoadDir parses a directory into a Set; Set.Register installs every theme
// into an Evaluator under its name. Watch keeps an Evaluator in sync with a
// theme directory while designers edit it.
package theme
