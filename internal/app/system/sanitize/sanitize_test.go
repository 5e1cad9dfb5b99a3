package sanitize_test

import (
	"testing"

	"github.com/giftmonk/giftmonk/internal/app/system/sanitize"
)

func TestText_Plain(t *testing.T) {
	if got := sanitize.Text("Red Bicycle"); got != "Red Bicycle" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestText_StripsMarkup(t *testing.T) {
	got := sanitize.Text(`<script>alert('xss')</script>Bike`)
	if got != "Bike" {
		t.Errorf("expected script stripped, got %q", got)
	}
}

func TestText_StripsTagsKeepsContent(t *testing.T) {
	got := sanitize.Text("<b>Lego</b> set")
	if got != "Lego set" {
		t.Errorf("expected tags stripped, got %q", got)
	}
}

func TestText_Empty(t *testing.T) {
	if got := sanitize.Text("   "); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestLink_Valid(t *testing.T) {
	in := "https://example.com/item?id=42"
	if got := sanitize.Link(in); got != in {
		t.Errorf("expected valid link preserved, got %q", got)
	}
}

func TestLink_RejectsJavascriptScheme(t *testing.T) {
	if got := sanitize.Link("javascript:alert('xss')"); got != "" {
		t.Errorf("expected javascript: link rejected, got %q", got)
	}
}

func TestLink_RejectsRelative(t *testing.T) {
	if got := sanitize.Link("/local/path"); got != "" {
		t.Errorf("expected relative link rejected, got %q", got)
	}
}

func TestLink_Empty(t *testing.T) {
	if got := sanitize.Link(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
