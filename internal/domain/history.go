package domain

import "time"

// SystemAuthor is the sentinel author recorded when the acting user is unknown.
const SystemAuthor = "system"

// HistoryKind discriminates the two event kinds in a task's history.
type HistoryKind string

const (
	HistoryKindComment  HistoryKind = "COMMENT"
	HistoryKindActivity HistoryKind = "ACTIVITY"
)

// HistoryEntry is a single event in a task's timeline. Comments carry the
// user-authored text in Text; activity entries carry the system message.
// Entries are append-only and never mutated after creation.
type HistoryEntry struct {
	Kind      HistoryKind
	TaskID    int64
	Author    string
	Text      string
	Timestamp time.Time
}
