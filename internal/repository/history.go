package repository

import (
	"sync"

	"github.com/flynaut/workforcemgmt/internal/domain"
)

// HistoryStore keeps per-task comment and activity sequences in process
// memory. Both sequences are append-only; nothing survives a restart. The
// store is safe for concurrent use: the outer lock guards the task map, a
// per-task lock guards that task's sequences, so appends to different tasks
// never contend.
type HistoryStore struct {
	mu   sync.RWMutex
	logs map[int64]*taskLog
}

type taskLog struct {
	mu         sync.RWMutex
	comments   []domain.HistoryEntry
	activities []domain.HistoryEntry
}

// NewHistoryStore creates an empty HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{logs: make(map[int64]*taskLog)}
}

// log returns the log for a task, creating it on first use.
func (s *HistoryStore) log(taskID int64) *taskLog {
	s.mu.RLock()
	l, ok := s.logs[taskID]
	s.mu.RUnlock()
	if ok {
		return l
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok = s.logs[taskID]; ok {
		return l
	}
	l = &taskLog{}
	s.logs[taskID] = l
	return l
}

// AppendComment appends a comment entry to the task's comment sequence.
func (s *HistoryStore) AppendComment(entry domain.HistoryEntry) {
	l := s.log(entry.TaskID)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.comments = append(l.comments, entry)
}

// AppendActivity appends an activity entry to the task's activity sequence.
func (s *HistoryStore) AppendActivity(entry domain.HistoryEntry) {
	l := s.log(entry.TaskID)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.activities = append(l.activities, entry)
}

// Entries returns copies of the task's comment and activity sequences, each
// in insertion order.
func (s *HistoryStore) Entries(taskID int64) (comments, activities []domain.HistoryEntry) {
	l := s.log(taskID)
	l.mu.RLock()
	defer l.mu.RUnlock()

	comments = make([]domain.HistoryEntry, len(l.comments))
	copy(comments, l.comments)
	activities = make([]domain.HistoryEntry, len(l.activities))
	copy(activities, l.activities)
	return comments, activities
}
