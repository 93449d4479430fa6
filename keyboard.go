package client

// Keyboard is an on-screen keyboard attached to a message. The platform's
// keyboard JSON uses capitalized field names.
type Keyboard struct {
	Type          string   `json:"Type"`
	DefaultHeight bool     `json:"DefaultHeight,omitempty"`
	BgColor       string   `json:"BgColor,omitempty"`
	Buttons       []Button `json:"Buttons"`
}

// Button is a single keyboard button.
type Button struct {
	Columns    int    `json:"Columns,omitempty"`
	Rows       int    `json:"Rows,omitempty"`
	ActionType string `json:"ActionType"`
	ActionBody string `json:"ActionBody"`
	Text       string `json:"Text,omitempty"`
	TextSize   string `json:"TextSize,omitempty"`
	BgColor    string `json:"BgColor,omitempty"`
}

// NewKeyboard builds a keyboard from the given buttons.
func NewKeyboard(buttons ...Button) *Keyboard {
	return &Keyboard{
		Type:    "keyboard",
		Buttons: buttons,
	}
}

// NewReplyButton builds a button that sends actionBody back to the bot as a
// regular message when tapped.
func NewReplyButton(text, actionBody string) Button {
	return Button{
		ActionType: "reply",
		ActionBody: actionBody,
		Text:       text,
	}
}

// NewURLButton builds a button that opens the given URL when tapped.
func NewURLButton(text, url string) Button {
	return Button{
		ActionType: "open-url",
		ActionBody: url,
		Text:       text,
	}
}
