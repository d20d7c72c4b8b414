package poll

import (
	"fmt"
	"log/slog"
	"sync"
)

// Manager owns the single-active-poll state machine: at most one poll is
// open at a time, votes are tallied in memory, and closing a poll posts a
// summary to the chat and forgets its votes.
//
// The mutex covers all state because votes arrive on bot handler
// goroutines while open/close can come from the cron scheduler.
type Manager struct {
	mu sync.Mutex

	messenger Messenger
	logger    *slog.Logger

	question string
	options  []string

	active *ActivePoll
	tally  *Tally
	names  *NameCache
}

func NewManager(messenger Messenger, logger *slog.Logger, question string, options []string) *Manager {
	return &Manager{
		messenger: messenger,
		logger:    logger,
		question:  question,
		options:   options,
		tally:     NewTally(),
		names:     NewNameCache(),
	}
}

// Open posts a new non-anonymous, single-answer poll to the chat.
// Returns ErrPollActive without side effects if a poll is already open.
func (m *Manager) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil {
		return ErrPollActive
	}

	pollID, messageID, err := m.messenger.SendPoll(m.question, m.options)
	if err != nil {
		return fmt.Errorf("send poll: %w", err)
	}

	m.active = &ActivePoll{PollID: pollID, MessageID: messageID}
	m.logger.Info("poll opened", "poll_id", pollID, "message_id", messageID)
	return nil
}

// Close stops the active poll, posts the vote summary and clears all state
// for that poll. Returns ErrNoActivePoll if nothing is open.
//
// On any messenger failure the state is left untouched and the poll stays
// marked active, so Close can simply be called again. If the poll was
// already stopped at Telegram, the retry's StopPoll error surfaces here
// like any other.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return ErrNoActivePoll
	}

	result, err := m.messenger.StopPoll(m.active.MessageID)
	if err != nil {
		return fmt.Errorf("stop poll: %w", err)
	}

	text, err := RenderSummary(m.buildSummary(m.active.PollID, result))
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	if err := m.messenger.SendText(text); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}

	m.logger.Info("poll closed", "poll_id", m.active.PollID)
	m.tally.Drop(m.active.PollID)
	m.active = nil
	return nil
}

// RecordAnswer applies a vote event: the voter's display name is cached
// and their previous choice for the poll is replaced with the given
// options (empty means the vote was retracted).
func (m *Manager) RecordAnswer(pollID string, userID int64, displayName string, options []int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.names.Set(userID, displayName)
	m.tally.SetVote(pollID, userID, options)

	m.logger.Info("vote recorded",
		"poll_id", pollID,
		"voter", displayName,
		"options", options,
	)
}

func (m *Manager) buildSummary(pollID string, result *Result) *Summary {
	s := &Summary{Question: result.Question}
	for i, label := range result.Options {
		voters := m.tally.Voters(pollID, i)
		names := make([]string, 0, len(voters))
		for _, id := range voters {
			names = append(names, m.names.Get(id))
		}
		s.Options = append(s.Options, SummaryOption{
			Label: label,
			Count: len(voters),
			Names: names,
		})
	}
	return s
}
