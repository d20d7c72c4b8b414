package bot

import (
	"errors"

	tele "gopkg.in/telebot.v4"

	"github.com/reyhsu/wanna-play/internal/poll"
)

// RegisterCommands sets up all chat commands behind the error middleware.
func (b *Bot) RegisterCommands() {
	group := b.bot.Group()
	group.Use(b.HandleErrors())

	group.Handle("/start", b.handleStart)
	group.Handle("/poll", b.handlePoll)
	group.Handle("/close", b.handleClose)
	group.Handle("/wea", b.handleWeather)
}

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send(MsgBotStarted)
}

// handlePoll opens a poll outside the schedule. Opening while one is
// already active is refused with a chat notice.
func (b *Bot) handlePoll(c tele.Context) error {
	b.logger.Info("command /poll",
		"user_id", c.Sender().ID,
		"username", c.Sender().Username,
		"chat_id", c.Chat().ID,
	)

	if err := b.manager.Open(); err != nil {
		if errors.Is(err, poll.ErrPollActive) {
			b.logger.Warn("poll already active, not opening another")
			return UserErrorf(MsgPollAlreadyActive)
		}
		return WrapUserError(MsgFailedOpenPoll, err)
	}
	return nil
}

// handleClose closes the active poll and posts the tally. Closing with no
// active poll is a warn-logged no-op with no chat reply.
func (b *Bot) handleClose(c tele.Context) error {
	b.logger.Info("command /close",
		"user_id", c.Sender().ID,
		"username", c.Sender().Username,
		"chat_id", c.Chat().ID,
	)

	if err := b.manager.Close(); err != nil {
		if errors.Is(err, poll.ErrNoActivePoll) {
			b.logger.Warn("no active poll to close, skipping")
			return nil
		}
		return WrapUserError(MsgFailedClosePoll, err)
	}
	return nil
}
