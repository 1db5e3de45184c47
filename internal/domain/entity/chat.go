package entity

import (
	"sort"
	"strings"
	"time"
)

// Chat threads live in the Realtime Database under "chats/<threadID>".
// The canonical thread ID is both usernames sorted and joined with "-";
// legacy threads written with an unsorted pair are still honored on lookup.
type ThreadMetadata struct {
	Users     []string `json:"users"`
	StartedAt string   `json:"startedAt"`
}

type Thread struct {
	Metadata ThreadMetadata     `json:"metadata"`
	Messages map[string]Message `json:"messages,omitempty"`
}

type Message struct {
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

type ThreadSummary struct {
	OppositeUser      string `json:"oppositeUser"`
	MostRecentMessage string `json:"mostRecentMessage"`
	Date              int64  `json:"date"`
}

func ThreadID(userA, userB string) string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return strings.Join(pair, "-")
}

// ThreadParticipants recovers the two usernames from a thread ID. Usernames
// containing "-" are not supported by this keying scheme.
func ThreadParticipants(threadID string) []string {
	return strings.Split(threadID, "-")
}

func NewThreadMetadata(userA, userB string) ThreadMetadata {
	return ThreadMetadata{
		Users:     []string{userA, userB},
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
