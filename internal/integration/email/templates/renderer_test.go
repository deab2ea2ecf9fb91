package templates

import (
	"strings"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("renders the reminder in both formats", func(t *testing.T) {
		html, text, err := renderer.Render(TemplateReminder, ReminderData{Title: "Inventory", Body: "Check <stock>"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(html, "Check &lt;stock&gt;") {
			t.Errorf("expected escaped body in HTML, got %q", html)
		}
		if !strings.Contains(text, "Check <stock>") {
			t.Errorf("expected raw body in text, got %q", text)
		}
	})

	t.Run("unknown template fails", func(t *testing.T) {
		if _, _, err := renderer.Render("missing", nil); err == nil {
			t.Error("expected error for unknown template")
		}
	})
}
