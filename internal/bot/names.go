package bot

import (
	tele "gopkg.in/telebot.v4"
)

// DisplayName picks the label a voter gets in the summary.
// Prefers the @handle, falls back to the profile name.
func DisplayName(u *tele.User) string {
	if u.Username != "" {
		return "@" + u.Username
	}
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}
