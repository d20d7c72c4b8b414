package bot

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	tele "gopkg.in/telebot.v4"
)

// FetchRadar downloads the radar image. Any status other than 200 OK is
// treated as a failed fetch.
func FetchRadar(client *http.Client, url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// handleWeather fetches the radar image and posts it to the chat.
func (b *Bot) handleWeather(c tele.Context) error {
	b.logger.Info("command /wea",
		"user_id", c.Sender().ID,
		"username", c.Sender().Username,
		"chat_id", c.Chat().ID,
	)

	data, err := FetchRadar(b.http, b.radarURL)
	if err != nil {
		return WrapUserError(MsgRadarLoadFailed, err)
	}

	photo := &tele.Photo{File: tele.FromReader(bytes.NewReader(data))}
	return c.Send(photo)
}
