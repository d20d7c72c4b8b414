package poll

// ActivePoll identifies the one poll currently open in the group chat.
type ActivePoll struct {
	PollID    string // Telegram poll ID, keys the tally
	MessageID int    // message carrying the poll, needed to stop it
}

// Result is the final state of a stopped poll as reported by Telegram.
type Result struct {
	Question string
	Options  []string
}

// Messenger is the outbound boundary to the messaging platform.
type Messenger interface {
	SendPoll(question string, options []string) (pollID string, messageID int, err error)
	StopPoll(messageID int) (*Result, error)
	SendText(text string) error
}
