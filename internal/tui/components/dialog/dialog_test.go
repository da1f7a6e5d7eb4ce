package dialog

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type doneMsg struct{}

func TestConfirm(t *testing.T) {
	t.Parallel()

	ran := false
	d := Dialog{Kind: KindConfirm, OnYes: func() tea.Msg { ran = true; return nil }}

	if closed, _ := d.HandleKey(tea.KeyPressMsg{Code: 'x', Text: "x"}); closed {
		t.Fatal("unrelated key closed the dialog")
	}

	closed, cmd := d.HandleKey(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if !closed || cmd != nil {
		t.Fatalf("n: closed=%v cmd=%v, want closed without command", closed, cmd != nil)
	}

	closed, cmd = d.HandleKey(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if !closed || cmd == nil {
		t.Fatal("y should close and return the confirm command")
	}
	cmd()
	if !ran {
		t.Error("confirm command did not run")
	}
}

func TestAlertEmitsThen(t *testing.T) {
	t.Parallel()

	d := Dialog{Kind: KindError, Title: "Error", Text: "boom", Then: doneMsg{}}
	closed, cmd := d.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !closed || cmd == nil {
		t.Fatal("enter should dismiss the alert and emit Then")
	}
	if _, ok := cmd().(doneMsg); !ok {
		t.Error("dismiss did not emit the Then message")
	}
}
