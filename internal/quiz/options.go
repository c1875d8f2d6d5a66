package quiz

// ErrorMode selects how the controller reacts to a failed turn.
type ErrorMode int

const (
	// ErrorReplyAndContinue tells the participant something went wrong and
	// keeps the conversation alive.
	ErrorReplyAndContinue ErrorMode = iota
	// ErrorSilent logs the failure without messaging the participant.
	ErrorSilent
)

// AdvanceMode selects how the conversation moves to the next question.
type AdvanceMode int

const (
	// AdvanceExplicit waits for the participant to tap a "next" button.
	AdvanceExplicit AdvanceMode = iota
	// AdvanceAuto asks the next question immediately after an answer.
	AdvanceAuto
)

// AnswerStyle selects how a stored correct answer is compared to a tap.
type AnswerStyle int

const (
	// AnswerLetter compares the canonical option letter ("A".."D").
	AnswerLetter AnswerStyle = iota
	// AnswerLiteralText compares the full option text.
	AnswerLiteralText
)

// Options tunes a Controller. The zero value gives letter answer keys,
// explicit advancing and participant-visible error replies.
type Options struct {
	OnError     ErrorMode
	AdvanceMode AdvanceMode
	AnswerStyle AnswerStyle
}
