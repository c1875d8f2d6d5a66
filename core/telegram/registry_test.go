package telegram

import (
	"testing"

	"github.com/m3rciful/quizbot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

func newTestRegistry() *Registry {
	noop := func(tele.Context) error { return nil }
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "greeting"})
	reg.RegisterCommand("/startquiz", commands.Command{Handler: noop, Description: "start a quiz"})
	reg.RegisterCommand("/reseed", commands.Command{Handler: noop, Description: "reload content", AdminOnly: true, Hidden: true})
	return reg
}

func TestLookupCommand(t *testing.T) {
	reg := newTestRegistry()

	cases := []struct {
		name  string
		want  string
		found bool
	}{
		{name: "/startquiz", want: "/startquiz", found: true},
		{name: "startquiz", want: "/startquiz", found: true},
		{name: "/reseed", want: "/reseed", found: true},
		{name: "/unknown", found: false},
		{name: "", found: false},
	}
	for _, tc := range cases {
		got, cmd, ok := reg.LookupCommand(tc.name)
		if ok != tc.found {
			t.Fatalf("LookupCommand(%q) found = %v, expected %v", tc.name, ok, tc.found)
		}
		if !tc.found {
			continue
		}
		if got != tc.want {
			t.Fatalf("LookupCommand(%q) name = %s, expected %s", tc.name, got, tc.want)
		}
		if cmd.Handler == nil {
			t.Fatalf("LookupCommand(%q) returned nil handler", tc.name)
		}
	}
}

func TestListCommandsHidesAdminEntries(t *testing.T) {
	reg := newTestRegistry()

	visible := reg.ListCommands(true)
	if len(visible) != 2 {
		t.Fatalf("visible commands = %d, expected 2", len(visible))
	}
	if visible[0].Text != "/start" || visible[1].Text != "/startquiz" {
		t.Fatalf("unexpected visible order: %v", visible)
	}

	all := reg.ListCommands(false)
	if len(all) != 3 {
		t.Fatalf("all commands = %d, expected 3", len(all))
	}
}
