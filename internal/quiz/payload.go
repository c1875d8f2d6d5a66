package quiz

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Callback payloads are compact JSON objects with exactly one key, so they
// always fit Telegram's 64-byte callback data limit:
//
//	{"c":"<uuid>"}  category selected
//	{"p":"<uuid>"}  paragraph confirmed
//	{"o":"A"}       option answered
//	{"a":"..."}     named action
const (
	keyCategory  = "c"
	keyParagraph = "p"
	keyOption    = "o"
	keyAction    = "a"
)

// Named actions carried by {"a":...} payloads.
const (
	ActionNextQuestion   = "nextQuestion"
	ActionSelectCategory = "selectCategory"
)

// PayloadKind identifies which of the four payload shapes was decoded.
type PayloadKind int

const (
	PayloadUnknown PayloadKind = iota
	PayloadCategory
	PayloadParagraph
	PayloadOption
	PayloadAction
)

// Payload is a decoded callback payload. Only the field matching Kind is set.
type Payload struct {
	Kind      PayloadKind
	Category  uuid.UUID
	Paragraph uuid.UUID
	Option    string
	Action    string
}

// CategoryPayload encodes a category selection.
func CategoryPayload(id uuid.UUID) string { return encodeOne(keyCategory, id.String()) }

// ParagraphPayload encodes a paragraph confirmation.
func ParagraphPayload(id uuid.UUID) string { return encodeOne(keyParagraph, id.String()) }

// OptionPayload encodes an answered option letter.
func OptionPayload(letter string) string { return encodeOne(keyOption, letter) }

// ActionPayload encodes a named action.
func ActionPayload(action string) string { return encodeOne(keyAction, action) }

func encodeOne(key, value string) string {
	b, _ := json.Marshal(map[string]string{key: value})
	return string(b)
}

// DecodePayload parses callback data into a Payload. Data that is not a JSON
// object with exactly one recognized key is rejected.
func DecodePayload(data string) (Payload, error) {
	var raw map[string]string
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return Payload{}, fmt.Errorf("payload: %w", err)
	}
	if len(raw) != 1 {
		return Payload{}, fmt.Errorf("payload: expected exactly one key, got %d", len(raw))
	}

	for key, value := range raw {
		switch key {
		case keyCategory:
			id, err := uuid.Parse(value)
			if err != nil {
				return Payload{}, fmt.Errorf("payload: category id: %w", err)
			}
			return Payload{Kind: PayloadCategory, Category: id}, nil
		case keyParagraph:
			id, err := uuid.Parse(value)
			if err != nil {
				return Payload{}, fmt.Errorf("payload: paragraph id: %w", err)
			}
			return Payload{Kind: PayloadParagraph, Paragraph: id}, nil
		case keyOption:
			if value == "" {
				return Payload{}, fmt.Errorf("payload: empty option")
			}
			return Payload{Kind: PayloadOption, Option: value}, nil
		case keyAction:
			switch value {
			case ActionNextQuestion, ActionSelectCategory:
				return Payload{Kind: PayloadAction, Action: value}, nil
			}
			return Payload{}, fmt.Errorf("payload: unknown action %q", value)
		default:
			return Payload{}, fmt.Errorf("payload: unknown key %q", key)
		}
	}
	return Payload{}, fmt.Errorf("payload: empty object")
}
