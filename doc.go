// Package resumekit provides the rendering core of a resume and
// cover-letter builder.
//
// Each subpackage can be used independently:
//
//   - template: the template evaluator: {{variable}} substitution, #each
//     loops, #if conditionals and helper functions over opaque data trees
//   - resume: the conventional resume/cover-letter data shape, loaders and
//     JSON Schema export
//   - theme: named template sets on disk, with frontmatter theme files, a
//     TOML manifest and hot reload
//
// # Quick Start
//
//	ev := template.New()
//	out, _ := ev.Render("Hello {{name}}!", map[string]any{"name": "Ada"})
//	// out: "Hello Ada!"
//
// Rendering a full document from typed data:
//
//	r, _ := resume.Load("resume.yaml")
//	ctx, _ := r.Context()
//	set, _ := theme.LoadDir("themes")
//	set.Register(ev)
//	html, _ := ev.Render(set.Default, ctx)
//
// The evaluator produces plain HTML fragments; inserting them into a
// document, drawing PDFs, storage and any AI-assisted text generation are
// the embedding application's business.
//
// # Design Philosophy
//
//   - No process-wide registries: callers hold an Evaluator instance
//   - Missing data degrades to empty output, never to an error
//   - Renders are synchronous and complete in microseconds for
//     document-sized templates
package resumekit
