package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// RawData returns the callback payload exactly as the pressed button carried it.
// Buttons built without a telebot unique key send their data verbatim; data
// produced by telebot's markup.Data helper is unwrapped from the
// \f<unique>|<payload> encoding first.
func RawData(c tele.Context) string {
	cb := c.Callback()
	if cb == nil {
		return ""
	}
	raw := cb.Data
	if !strings.HasPrefix(raw, "\f") && !strings.HasPrefix(raw, "\\f") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "\f")
	raw = strings.TrimPrefix(raw, "\\f")
	if _, payload, found := strings.Cut(raw, "|"); found {
		return payload
	}
	return raw
}
