package poll

// UnknownName is the label for a voter whose display name was never seen,
// which can only happen if the process restarted mid-poll.
const UnknownName = "未知"

// NameCache maps Telegram user IDs to display labels. It is refreshed on
// every vote and never evicts.
type NameCache struct {
	names map[int64]string
}

func NewNameCache() *NameCache {
	return &NameCache{names: make(map[int64]string)}
}

func (c *NameCache) Set(userID int64, name string) {
	c.names[userID] = name
}

// Get returns the cached label for the user, or UnknownName.
func (c *NameCache) Get(userID int64) string {
	if name, ok := c.names[userID]; ok {
		return name
	}
	return UnknownName
}
