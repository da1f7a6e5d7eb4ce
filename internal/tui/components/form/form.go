package form

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/tui/theme"
)

const cursor = "█"

type Field struct {
	Label       string
	Value       string
	Placeholder string
	Secret      bool
}

// Form is a vertical list of single-line text fields with one focused.
type Form struct {
	Fields []Field
	Focus  int
}

func New(fields ...Field) Form {
	return Form{Fields: fields}
}

func (f Form) Value(i int) string {
	if i < 0 || i >= len(f.Fields) {
		return ""
	}
	return f.Fields[i].Value
}

// HandleKey edits the focused field. It reports true when the user
// submitted with enter on the last field or ctrl+s anywhere.
func (f *Form) HandleKey(msg tea.KeyPressMsg) bool {
	n := len(f.Fields)
	if n == 0 {
		return false
	}

	switch msg.String() {
	case "ctrl+s":
		return true
	case "enter":
		if f.Focus == n-1 {
			return true
		}
		f.Focus++
	case "tab", "down":
		f.Focus = (f.Focus + 1) % n
	case "shift+tab", "up":
		f.Focus = (f.Focus - 1 + n) % n
	case "backspace":
		v := []rune(f.Fields[f.Focus].Value)
		if len(v) > 0 {
			f.Fields[f.Focus].Value = string(v[:len(v)-1])
		}
	case "space":
		f.Fields[f.Focus].Value += " "
	default:
		if msg.Text != "" {
			f.Fields[f.Focus].Value += msg.Text
		}
	}
	return false
}

func (f Form) Reset() Form {
	for i := range f.Fields {
		f.Fields[i].Value = ""
	}
	f.Focus = 0
	return f
}

func (f Form) View(t theme.Theme) string {
	labelWidth := 0
	for _, field := range f.Fields {
		labelWidth = max(labelWidth, lipgloss.Width(field.Label))
	}

	var (
		labelStyle   = t.Muted().Width(labelWidth + 2)
		focusStyle   = t.Accent().Bold(true).Width(labelWidth + 2)
		valueStyle   = t.Base()
		placeholder  = t.Muted().Italic(true)
		lines        = make([]string, 0, len(f.Fields))
	)

	for i, field := range f.Fields {
		marker, label := "  ", labelStyle.Render(field.Label)
		if i == f.Focus {
			marker, label = t.Accent().Render("> "), focusStyle.Render(field.Label)
		}

		value := field.Value
		if field.Secret {
			value = strings.Repeat("•", len([]rune(value)))
		}
		rendered := valueStyle.Render(value)
		if value == "" && field.Placeholder != "" && i != f.Focus {
			rendered = placeholder.Render(field.Placeholder)
		}
		if i == f.Focus {
			rendered += t.Accent().Render(cursor)
		}

		lines = append(lines, marker+label+rendered)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
