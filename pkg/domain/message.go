package domain

// MessageKind tells a console how a line of output should be presented.
type MessageKind string

const (
	// MessageText is the content of a node or the prompt of a choice.
	MessageText MessageKind = "text"
	// MessageOption is one selectable label of a choice.
	MessageOption MessageKind = "option"
	// MessageNotice is feedback about rejected input.
	MessageNotice MessageKind = "notice"
)

// Message is a single line of dialogue output.
type Message struct {
	Kind MessageKind `json:"type"`
	Text string      `json:"text"`
}

// Text builds a MessageText.
func Text(s string) Message { return Message{Kind: MessageText, Text: s} }

// OptionLabel builds a MessageOption.
func OptionLabel(label string) Message { return Message{Kind: MessageOption, Text: label} }

// Notice builds a MessageNotice.
func Notice(s string) Message { return Message{Kind: MessageNotice, Text: s} }
