package bot

import (
	tele "gopkg.in/telebot.v4"
)

func (b *Bot) RegisterHandlers() {
	b.bot.Handle(tele.OnPollAnswer, b.handlePollAnswer)
}

func (b *Bot) handlePollAnswer(c tele.Context) error {
	answer := c.PollAnswer()
	if answer == nil || answer.Sender == nil {
		return nil
	}

	b.manager.RecordAnswer(
		answer.PollID,
		answer.Sender.ID,
		DisplayName(answer.Sender),
		answer.Options,
	)
	return nil
}
