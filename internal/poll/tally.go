package poll

// Tally maps poll ID -> option index -> voter IDs in vote-arrival order.
// A user appears under at most one option per poll: recording a vote first
// removes the user from every option of that poll.
type Tally struct {
	votes map[string]map[int][]int64
}

func NewTally() *Tally {
	return &Tally{votes: make(map[string]map[int][]int64)}
}

// SetVote replaces the user's previous choice for the poll with the given
// options. An empty slice is a retraction: the user is removed from the
// tally for that poll.
func (t *Tally) SetVote(pollID string, userID int64, options []int) {
	byOption := t.votes[pollID]
	if byOption == nil {
		byOption = make(map[int][]int64)
		t.votes[pollID] = byOption
	}

	for opt, voters := range byOption {
		for i, id := range voters {
			if id == userID {
				byOption[opt] = append(voters[:i], voters[i+1:]...)
				break
			}
		}
	}

	for _, opt := range options {
		byOption[opt] = append(byOption[opt], userID)
	}
}

// Voters returns the voter IDs for the option in vote-arrival order.
func (t *Tally) Voters(pollID string, option int) []int64 {
	return t.votes[pollID][option]
}

// Drop forgets all votes recorded for the poll.
func (t *Tally) Drop(pollID string) {
	delete(t.votes, pollID)
}
