package quiz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPayloadRoundTrip(t *testing.T) {
	catID := uuid.New()
	parID := uuid.New()

	cases := []struct {
		name string
		data string
		want Payload
	}{
		{"category", CategoryPayload(catID), Payload{Kind: PayloadCategory, Category: catID}},
		{"paragraph", ParagraphPayload(parID), Payload{Kind: PayloadParagraph, Paragraph: parID}},
		{"option", OptionPayload("B"), Payload{Kind: PayloadOption, Option: "B"}},
		{"next", ActionPayload(ActionNextQuestion), Payload{Kind: PayloadAction, Action: ActionNextQuestion}},
		{"restart", ActionPayload(ActionSelectCategory), Payload{Kind: PayloadAction, Action: ActionSelectCategory}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodePayload(tc.data)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPayloadFitsCallbackDataLimit(t *testing.T) {
	// Telegram rejects callback data longer than 64 bytes.
	for _, data := range []string{
		CategoryPayload(uuid.New()),
		ParagraphPayload(uuid.New()),
		OptionPayload("D"),
		ActionPayload(ActionSelectCategory),
	} {
		require.LessOrEqual(t, len(data), 64, "payload %q", data)
	}
}

func TestDecodePayloadRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", "press me"},
		{"empty object", "{}"},
		{"two keys", `{"c":"` + uuid.NewString() + `","o":"A"}`},
		{"unknown key", `{"x":"1"}`},
		{"bad category id", `{"c":"not-a-uuid"}`},
		{"bad paragraph id", `{"p":"42"}`},
		{"empty option", `{"o":""}`},
		{"unknown action", `{"a":"dropTables"}`},
		{"json array", `["c"]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePayload(tc.data)
			require.Error(t, err)
		})
	}
}
