package bot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandName(t *testing.T) {
	cases := []struct {
		text      string
		name      string
		isCommand bool
	}{
		{text: "/startquiz", name: "/startquiz", isCommand: true},
		{text: "  /start  ", name: "/start", isCommand: true},
		{text: "/startquiz@QuizBot", name: "/startquiz", isCommand: true},
		{text: "/help me please", name: "/help", isCommand: true},
		{text: "hello there", isCommand: false},
		{text: "", isCommand: false},
		{text: "/", isCommand: false},
	}
	for _, tc := range cases {
		name, ok := commandName(tc.text)
		require.Equal(t, tc.isCommand, ok, "text %q", tc.text)
		if ok {
			require.Equal(t, tc.name, name, "text %q", tc.text)
		}
	}
}
