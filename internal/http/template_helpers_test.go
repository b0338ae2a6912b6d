package httpx

import (
	"bytes"
	"testing"
)

// Ensures sectionTmpl maps known pages to expected partials and defaults for unknown.
func TestTemplateHelpers_SectionTmpl_Mapping(t *testing.T) {
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return
	}

	// Clone the template set and add a tiny scratch template that calls sectionTmpl
	cloned, err := tr.t.Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	cloned, err = cloned.Parse(`{{define "scratch"}}{{ sectionTmpl . }}{{end}}`)
	if err != nil {
		t.Fatalf("parse scratch: %v", err)
	}

	cases := map[string]string{
		PageHome:       "dashboard-content", // Home page shows the dashboard
		PageDashboard:  "dashboard-content",
		PagePlans:      "plans-content",
		PageMonitoring: "monitoring-content",
		PageRisks:      "risks-content",
		"unknown":      "dashboard-content", // fallback to dashboard
	}
	for page, want := range cases {
		var buf bytes.Buffer
		if err := cloned.ExecuteTemplate(&buf, "scratch", page); err != nil {
			t.Fatalf("execute scratch(%s): %v", page, err)
		}
		got := buf.String()
		if got != want {
			t.Fatalf("sectionTmpl(%s) => %q, want %q", page, got, want)
		}
	}
}

// Ensures renderSection renders the correct partial and falls back on unknown pages.
func TestTemplateHelpers_RenderSection_RendersAndFallbacks(t *testing.T) {
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return
	}

	// Add a scratch template that prints the rendered HTML from renderSection
	cloned, err := tr.t.Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	cloned, err = cloned.Parse(`{{define "scratch"}}{{ renderSection .Page .Data }}{{end}}`)
	if err != nil {
		t.Fatalf("parse scratch: %v", err)
	}

	t.Run("dashboard renders expected content", func(t *testing.T) {
		var buf bytes.Buffer
		data := map[string]any{
			"Page": PageDashboard,
			"Data": map[string]any{},
		}
		if err := cloned.ExecuteTemplate(&buf, "scratch", data); err != nil {
			t.Fatalf("execute scratch(dashboard): %v", err)
		}
		html := buf.String()
		if !containsAll(html, []string{"stat-grid", "Strategic Goals"}) {
			t.Fatalf("dashboard render missing expected substrings: %q", html)
		}
	})

	t.Run("unknown page falls back to dashboard", func(t *testing.T) {
		var buf bytes.Buffer
		data := map[string]any{"Page": "nope", "Data": map[string]any{}}
		if err := cloned.ExecuteTemplate(&buf, "scratch", data); err != nil {
			t.Fatalf("execute scratch(unknown): %v", err)
		}
		html := buf.String()
		if !containsAll(html, []string{"stat-grid"}) {
			t.Fatalf("fallback render missing 'stat-grid': %q", html)
		}
	})
}

// containsAll is now available as ContainsAll in testhelpers.go
// This function is kept for backward compatibility in this test file.
func containsAll(s string, subs []string) bool {
	return ContainsAll(s, subs)
}
