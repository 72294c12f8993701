package template

import (
	"errors"
	"reflect"
	"testing"
)

func TestEvaluator_Render_Variables(t *testing.T) {
	ev := New()

	tests := []struct {
		name   string
		markup string
		data   any
		want   string
	}{
		{
			name:   "single variable",
			markup: "Hello {{name}}!",
			data:   map[string]any{"name": "Ada"},
			want:   "Hello Ada!",
		},
		{
			name:   "multiple variables",
			markup: "{{greeting}}, {{name}}!",
			data:   map[string]any{"greeting": "Hi", "name": "Grace"},
			want:   "Hi, Grace!",
		},
		{
			name:   "dotted path",
			markup: "{{personal.contact.email}}",
			data: map[string]any{"personal": map[string]any{
				"contact": map[string]any{"email": "ada@example.com"},
			}},
			want: "ada@example.com",
		},
		{
			name:   "missing variable renders empty",
			markup: "Hello {{name}}!",
			data:   map[string]any{},
			want:   "Hello !",
		},
		{
			name:   "missing intermediate segment renders empty",
			markup: "[{{a.b.c}}]",
			data:   map[string]any{"a": map[string]any{}},
			want:   "[]",
		},
		{
			name:   "path through a scalar renders empty",
			markup: "[{{a.b}}]",
			data:   map[string]any{"a": 42},
			want:   "[]",
		},
		{
			name:   "nil data",
			markup: "Hello {{name}}!",
			data:   nil,
			want:   "Hello !",
		},
		{
			name:   "number value",
			markup: "{{years}} years",
			data:   map[string]any{"years": 7},
			want:   "7 years",
		},
		{
			name:   "float value keeps plain form",
			markup: "{{gpa}}",
			data:   map[string]any{"gpa": 3.9},
			want:   "3.9",
		},
		{
			name:   "bool value",
			markup: "{{active}}",
			data:   map[string]any{"active": true},
			want:   "true",
		},
		{
			name:   "structured value serializes as JSON",
			markup: "{{personal}}",
			data:   map[string]any{"personal": map[string]any{"name": "Ada"}},
			want:   `{"name":"Ada"}`,
		},
		{
			name:   "sequence value serializes as JSON",
			markup: "{{skills}}",
			data:   map[string]any{"skills": []any{"Go", "Rust"}},
			want:   `["Go","Rust"]`,
		},
		{
			name:   "no constructs",
			markup: "plain text",
			data:   map[string]any{"name": "Ada"},
			want:   "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.Render(tt.markup, tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluator_TemplateRegistry(t *testing.T) {
	ev := New()

	ev.RegisterTemplate("modern", Template{Markup: "<h1>{{name}}</h1>", Styles: "h1{color:teal}"})
	ev.RegisterTemplate("classic", Template{Markup: "Name: {{name}}"})

	got, err := ev.Render("modern", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "<h1>Ada</h1>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Unregistered names fall back to raw markup.
	got, err = ev.Render("Dear {{name}},", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Dear Ada,"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Last write wins.
	ev.RegisterTemplate("modern", Template{Markup: "v2 {{name}}"})
	got, _ = ev.Render("modern", map[string]any{"name": "Ada"})
	if want := "v2 Ada"; got != want {
		t.Errorf("after overwrite got %q, want %q", got, want)
	}

	tpl, ok := ev.Template("classic")
	if !ok {
		t.Fatal("classic should be registered")
	}
	if tpl.Markup != "Name: {{name}}" {
		t.Errorf("unexpected markup %q", tpl.Markup)
	}
	if _, ok := ev.Template("nope"); ok {
		t.Error("nope should not be registered")
	}

	names := ev.TemplateNames()
	if want := []string{"classic", "modern"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestEvaluator_Compile_MatchesRender(t *testing.T) {
	ev := New()

	markup := "{{#each skills}}{{this}}{{#if last}}{{else}}, {{/if}}{{/each}}"
	data := map[string]any{"skills": []any{"Go", "Rust", "SQL"}}

	fn := ev.Compile(markup)
	fromCompile, err := fn(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromRender, err := ev.Render(markup, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fromCompile != fromRender {
		t.Errorf("compile output %q differs from render output %q", fromCompile, fromRender)
	}
	if want := "Go, Rust, SQL"; fromCompile != want {
		t.Errorf("got %q, want %q", fromCompile, want)
	}
}

func TestEvaluator_Compile_LateBoundHelpers(t *testing.T) {
	ev := New()
	fn := ev.Compile("{{shout name}}")
	data := map[string]any{"name": "ada"}

	// No helper registered yet: the construct passes through verbatim.
	got, err := fn(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "{{shout name}}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	ev.RegisterHelper("shout", func(args ...any) (any, error) {
		return stringify(args[0]) + "!", nil
	})
	got, err = fn(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "ada!"; got != want {
		t.Errorf("after registration got %q, want %q", got, want)
	}

	// Redefining after compile changes future output.
	ev.RegisterHelper("shout", func(args ...any) (any, error) {
		return stringify(args[0]) + "!!", nil
	})
	got, _ = fn(data)
	if want := "ada!!"; got != want {
		t.Errorf("after redefinition got %q, want %q", got, want)
	}
}

func TestEvaluator_HelperErrorAbortsRender(t *testing.T) {
	ev := New()
	ev.RegisterHelper("boom", func(args ...any) (any, error) {
		return nil, errors.New("cannot handle this")
	})

	out, err := ev.Render("before {{boom x}} after", map[string]any{"x": 1})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrHelper) {
		t.Errorf("error %v should wrap ErrHelper", err)
	}
	if out != "" {
		t.Errorf("expected no partial output, got %q", out)
	}
}

func TestEvaluator_UnknownHelperPassesThrough(t *testing.T) {
	ev := New()

	got, err := ev.Render("{{unknownHelper a b}}", map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "{{unknownHelper a b}}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEvaluator_RenderIsIdempotentOnPlainOutput(t *testing.T) {
	ev := New()

	markup := "{{#each skills}}<li>{{this}}</li>{{/each}}"
	data := map[string]any{"skills": []any{"Go", "Rust"}}

	first, err := ev.Render(markup, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ev.Render(first, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("re-render changed output: %q -> %q", first, second)
	}
}

func TestEvaluator_RenderResumeDocument(t *testing.T) {
	ev := New()
	ev.RegisterTemplate("compact", Template{Markup: `<header>
<h1>{{personal.name}}</h1>
{{#if personal.title}}<h2>{{personal.title}}</h2>{{/if}}
</header>
<section>
{{#each experience}}<article>
<h3>{{this.role}} at {{this.company}}</h3>
<p>{{formatDate this.start "long"}} — {{#if this.end}}{{formatDate this.end "long"}}{{else}}Present{{/if}}</p>
<p>{{truncate this.summary 40}}</p>
</article>
{{/each}}</section>
<footer>{{join skills " · "}}</footer>`})

	data := map[string]any{
		"personal": map[string]any{"name": "Ada Lovelace", "title": "Analyst"},
		"skills":   []any{"Mathematics", "Programming"},
		"experience": []any{
			map[string]any{
				"role":    "Collaborator",
				"company": "Analytical Engine",
				"start":   "1842-08-01",
				"end":     "",
				"summary": "Wrote the first published algorithm intended for a machine.",
			},
		},
	}

	got, err := ev.Render("compact", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<header>
<h1>Ada Lovelace</h1>
<h2>Analyst</h2>
</header>
<section>
<article>
<h3>Collaborator at Analytical Engine</h3>
<p>August 1, 1842 — Present</p>
<p>Wrote the first published algorithm inte...</p>
</article>
</section>
<footer>Mathematics · Programming</footer>`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
