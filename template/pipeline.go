package template

import (
	"fmt"
	"regexp"
	"strings"
)

// evaluate runs the four-pass pipeline on markup against ctx. Each pass
// consumes the output of the previous one, in fixed order: loops,
// conditionals, variables, helpers. Loop bodies and conditional branches
// re-enter the pipeline recursively, which is what lets constructs nest.
func (e *Evaluator) evaluate(markup string, ctx any) (string, error) {
	out, err := e.expandLoops(markup, ctx)
	if err != nil {
		return "", err
	}
	out, err = e.expandConditionals(out, ctx)
	if err != nil {
		return "", err
	}
	out = substituteVariables(out, ctx)
	return e.invokeHelpers(out, ctx)
}

// block is a well-formed region delimited by {{#kind path}} ... {{/kind}}.
type block struct {
	start, end int    // offsets of the whole region in the source
	path       string // dotted path argument of the open marker
	body       string // content between the markers
}

// findBlock locates the first well-formed block of the given kind at or
// after from. Close markers are matched with depth counting, so a block of
// the same kind nested in the body does not terminate the region early.
// A malformed open marker, or one with no matching close, is skipped and
// left for the later passes to treat as literal text.
func findBlock(s, kind string, from int) (block, bool) {
	open := "{{#" + kind
	closing := "{{/" + kind + "}}"

	for pos := from; ; {
		rel := strings.Index(s[pos:], open)
		if rel < 0 {
			return block{}, false
		}
		start := pos + rel

		path, bodyStart, ok := parseOpenMarker(s, start, open)
		if !ok {
			pos = start + len(open)
			continue
		}
		bodyEnd, ok := findClose(s, kind, bodyStart)
		if !ok {
			pos = start + len(open)
			continue
		}

		return block{
			start: start,
			end:   bodyEnd + len(closing),
			path:  path,
			body:  s[bodyStart:bodyEnd],
		}, true
	}
}

// parseOpenMarker parses "{{#kind path}}" at start. The prefix s[start:]
// is already known to begin with open. Returns the path argument and the
// offset just past the marker.
func parseOpenMarker(s string, start int, open string) (path string, bodyStart int, ok bool) {
	i := start + len(open)
	j := i
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	if j == i {
		// No separator: this is some other construct, e.g. {{#ifx}}.
		return "", 0, false
	}
	k := j
	for k < len(s) && isPathChar(s[k]) {
		k++
	}
	if k == j {
		return "", 0, false
	}
	path = s[j:k]
	for k < len(s) && (s[k] == ' ' || s[k] == '\t') {
		k++
	}
	if !strings.HasPrefix(s[k:], "}}") {
		return "", 0, false
	}
	return path, k + 2, true
}

// findClose returns the offset of the close marker matching an open marker
// of the given kind whose body starts at from.
func findClose(s, kind string, from int) (int, bool) {
	open := "{{#" + kind
	closing := "{{/" + kind + "}}"

	depth := 0
	for pos := from; ; {
		oi := strings.Index(s[pos:], open)
		ci := strings.Index(s[pos:], closing)
		if ci < 0 {
			return 0, false
		}
		if oi >= 0 && oi < ci {
			abs := pos + oi
			if _, next, ok := parseOpenMarker(s, abs, open); ok {
				depth++
				pos = next
			} else {
				pos = abs + len(open)
			}
			continue
		}
		abs := pos + ci
		if depth == 0 {
			return abs, true
		}
		depth--
		pos = abs + len(closing)
	}
}

// expandLoops is pass 1: every {{#each path}}...{{/each}} region is
// replaced by the concatenation of its body evaluated once per element of
// the sequence at path. A path that does not resolve to a sequence yields
// an empty region.
func (e *Evaluator) expandLoops(s string, ctx any) (string, error) {
	var out strings.Builder
	pos := 0
	for {
		b, ok := findBlock(s, "each", pos)
		if !ok {
			out.WriteString(s[pos:])
			return out.String(), nil
		}
		out.WriteString(s[pos:b.start])

		items, isSeq := asSequence(resolvePath(ctx, b.path))
		if isSeq {
			for i, item := range items {
				expanded, err := e.evaluate(b.body, newLoopScope(ctx, item, i, len(items)))
				if err != nil {
					return "", err
				}
				out.WriteString(expanded)
			}
		}
		pos = b.end
	}
}

// loopScope is the per-iteration context for a loop body: the current item
// and position bindings layered over the enclosing context. The binding
// names shadow enclosing keys; every other lookup falls through to the
// parent, so typed struct and map contexts keep their fields visible
// inside the loop.
type loopScope struct {
	vars   map[string]any
	parent any
}

func newLoopScope(ctx, item any, i, n int) *loopScope {
	return &loopScope{
		vars: map[string]any{
			"this":  item,
			"index": i,
			"first": i == 0,
			"last":  i == n-1,
		},
		parent: ctx,
	}
}

// expandConditionals is pass 2: {{#if path}}...{{else}}...{{/if}} and
// {{#if path}}...{{/if}} regions collapse to the branch selected by the
// truthiness of path. The matcher finds the close marker for the whole
// region before looking for a top-level else, so an if/else block is never
// mis-split by bare-if scanning.
func (e *Evaluator) expandConditionals(s string, ctx any) (string, error) {
	var out strings.Builder
	pos := 0
	for {
		b, ok := findBlock(s, "if", pos)
		if !ok {
			out.WriteString(s[pos:])
			return out.String(), nil
		}
		out.WriteString(s[pos:b.start])

		thenBody, elseBody := splitElse(b.body)
		branch := elseBody
		if truthy(resolvePath(ctx, b.path)) {
			branch = thenBody
		}
		if branch != "" {
			expanded, err := e.evaluate(branch, ctx)
			if err != nil {
				return "", err
			}
			out.WriteString(expanded)
		}
		pos = b.end
	}
}

const elseMarker = "{{else}}"

// splitElse splits a conditional body at its top-level {{else}}. An else
// inside a nested {{#if}} block belongs to that block.
func splitElse(body string) (thenBody, elseBody string) {
	depth := 0
	for pos := 0; ; {
		next := strings.Index(body[pos:], "{{")
		if next < 0 {
			return body, ""
		}
		abs := pos + next
		switch {
		case depth == 0 && strings.HasPrefix(body[abs:], elseMarker):
			return body[:abs], body[abs+len(elseMarker):]
		case strings.HasPrefix(body[abs:], "{{#if"):
			if _, markerEnd, ok := parseOpenMarker(body, abs, "{{#if"); ok {
				depth++
				pos = markerEnd
			} else {
				pos = abs + 2
			}
		case strings.HasPrefix(body[abs:], "{{/if}}"):
			if depth > 0 {
				depth--
			}
			pos = abs + len("{{/if}}")
		default:
			pos = abs + 2
		}
	}
}

var variableRe = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)\}\}`)

// substituteVariables is pass 3: every remaining {{dotted.path}} reference
// is replaced by its resolved value. Constructs starting with the block
// sigils (# or /) do not match the pattern and stay as-is: they are
// leftovers of unmatched blocks, not data references.
func substituteVariables(s string, ctx any) string {
	return variableRe.ReplaceAllStringFunc(s, func(m string) string {
		return stringify(resolvePath(ctx, m[2:len(m)-2]))
	})
}

var helperRe = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)[ \t]+([^{}]+)\}\}`)

// invokeHelpers is pass 4: every remaining {{name args...}} construct is
// resolved against the helper registry. An unregistered name leaves the
// construct completely untouched; this is the fallback for any double-brace
// text the earlier passes did not consume. Helper errors abort the render.
func (e *Evaluator) invokeHelpers(s string, ctx any) (string, error) {
	matches := helperRe.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s, nil
	}

	var out strings.Builder
	pos := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		name := s[m[2]:m[3]]
		rawArgs := s[m[4]:m[5]]

		out.WriteString(s[pos:start])
		pos = end

		fn, ok := e.helper(name)
		if !ok {
			out.WriteString(s[start:end])
			continue
		}
		result, err := fn(parseArgs(rawArgs, ctx)...)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrHelper, name, err)
		}
		out.WriteString(stringify(result))
	}
	out.WriteString(s[pos:])
	return out.String(), nil
}
