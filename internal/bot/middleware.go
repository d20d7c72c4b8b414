package bot

import (
	tele "gopkg.in/telebot.v4"
)

// HandleErrors converts handler errors into chat replies. UserError
// messages are posted as-is, anything else becomes a generic failure
// notice. The reply itself is best-effort: a failed send is only logged.
func (b *Bot) HandleErrors() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			if ShouldLog(err) {
				b.logger.Error("command failed",
					"command", c.Text(),
					"error", err,
				)
			}

			if sendErr := c.Send(GetUserMessage(err)); sendErr != nil {
				b.logger.Warn("failed to notify chat", "error", sendErr)
			}
			return nil
		}
	}
}
