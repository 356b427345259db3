package resume

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"folio/domain"
)

func TestNew_DerivesBothURLsFromOneSource(t *testing.T) {
	m := New(domain.Profile{
		Name:         "Ada",
		ResumePDFURL: "https://drive.google.com/file/d/ABC123/view",
	})
	if m.Links().Preview != "https://drive.google.com/file/d/ABC123/preview" {
		t.Fatalf("unexpected preview: %q", m.Links().Preview)
	}
	if m.Links().Download != "https://drive.google.com/uc?export=download&id=ABC123" {
		t.Fatalf("unexpected download: %q", m.Links().Download)
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "ABC123/preview") || !strings.Contains(view, "export=download") {
		t.Fatalf("derived urls must render: %q", view)
	}
}

func TestNew_UnrecognizedURLNeverBlocksRendering(t *testing.T) {
	src := "https://example.com/resume.pdf"
	m := New(domain.Profile{Name: "Ada", ResumePDFURL: src})
	if m.Links().Preview != src || m.Links().Download != src {
		t.Fatalf("parse miss must pass source through: %#v", m.Links())
	}
	if !strings.Contains(ansi.Strip(m.View()), src) {
		t.Fatalf("view must still render")
	}
}

func TestView_MissingDocument(t *testing.T) {
	view := ansi.Strip(New(domain.Profile{Name: "Ada"}).View())
	if !strings.Contains(view, "No résumé document") {
		t.Fatalf("expected empty affordance: %q", view)
	}
}
