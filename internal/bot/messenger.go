package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/reyhsu/wanna-play/internal/poll"
)

// Messenger sends poll traffic to the fixed group chat over the Telegram
// Bot API. It is the poll.Messenger used in production; tests use mocks.
type Messenger struct {
	bot  *tele.Bot
	chat *tele.Chat
}

func NewMessenger(b *tele.Bot, chatID int64) *Messenger {
	return &Messenger{bot: b, chat: &tele.Chat{ID: chatID}}
}

func (m *Messenger) SendPoll(question string, options []string) (string, int, error) {
	p := &tele.Poll{
		Type:            tele.PollRegular,
		Question:        question,
		Anonymous:       false,
		MultipleAnswers: false,
	}
	p.AddOptions(options...)

	msg, err := m.bot.Send(m.chat, p)
	if err != nil {
		return "", 0, err
	}
	return msg.Poll.ID, msg.ID, nil
}

func (m *Messenger) StopPoll(messageID int) (*poll.Result, error) {
	msg := &tele.Message{ID: messageID, Chat: m.chat}
	stopped, err := m.bot.StopPoll(msg)
	if err != nil {
		return nil, err
	}

	result := &poll.Result{Question: stopped.Question}
	for _, opt := range stopped.Options {
		result.Options = append(result.Options, opt.Text)
	}
	return result, nil
}

func (m *Messenger) SendText(text string) error {
	_, err := m.bot.Send(m.chat, text)
	return err
}
