package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/flynaut/workforcemgmt/internal/domain"
	"github.com/flynaut/workforcemgmt/internal/repository"
)

// TaskGetter is the task store lookup needed by the history log.
type TaskGetter interface {
	GetByID(ctx context.Context, taskID int64) (*domain.Task, error)
}

// HistoryService owns the append-only per-task history log. It is the sole
// writer of both comment and activity entries; the lifecycle engine records
// activity through it rather than touching the store directly.
type HistoryService struct {
	store *repository.HistoryStore
	tasks TaskGetter
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(store *repository.HistoryStore, tasks TaskGetter) *HistoryService {
	return &HistoryService{
		store: store,
		tasks: tasks,
	}
}

// AddComment stamps and appends a comment for a task, then appends the
// correlated "Comment added" activity attributed to the same author. An
// empty author falls back to the system sentinel.
func (s *HistoryService) AddComment(ctx context.Context, taskID int64, body, author string) error {
	if strings.TrimSpace(body) == "" {
		return domain.ErrEmptyComment
	}

	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}

	if author == "" {
		author = domain.SystemAuthor
	}

	s.store.AppendComment(domain.HistoryEntry{
		Kind:      domain.HistoryKindComment,
		TaskID:    taskID,
		Author:    author,
		Text:      body,
		Timestamp: time.Now(),
	})

	s.RecordActivity(taskID, "Comment added", author)

	slog.Info("comment added", "task_id", taskID, "author", author)

	return nil
}

// RecordActivity appends a system activity entry to a task's history.
func (s *HistoryService) RecordActivity(taskID int64, message, author string) {
	if author == "" {
		author = domain.SystemAuthor
	}

	s.store.AppendActivity(domain.HistoryEntry{
		Kind:      domain.HistoryKindActivity,
		TaskID:    taskID,
		Author:    author,
		Text:      message,
		Timestamp: time.Now(),
	})
}

// History returns the task's merged comment and activity entries sorted
// ascending by timestamp. Entries with equal timestamps keep comments before
// activities, and insertion order within a kind.
func (s *HistoryService) History(ctx context.Context, taskID int64) ([]domain.HistoryEntry, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	comments, activities := s.store.Entries(taskID)

	entries := make([]domain.HistoryEntry, 0, len(comments)+len(activities))
	entries = append(entries, comments...)
	entries = append(entries, activities...)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	return entries, nil
}
