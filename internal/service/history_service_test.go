package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flynaut/workforcemgmt/internal/domain"
	"github.com/flynaut/workforcemgmt/internal/repository"
	"github.com/flynaut/workforcemgmt/internal/service"
)

// stubTaskGetter serves task lookups from a fixed map.
type stubTaskGetter struct {
	tasks map[int64]*domain.Task
}

func (s *stubTaskGetter) GetByID(_ context.Context, taskID int64) (*domain.Task, error) {
	if task, ok := s.tasks[taskID]; ok {
		return task, nil
	}
	return nil, domain.ErrTaskNotFound
}

func newHistoryFixture() (*service.HistoryService, *repository.HistoryStore) {
	store := repository.NewHistoryStore()
	getter := &stubTaskGetter{tasks: map[int64]*domain.Task{
		1: {ID: 1, Status: domain.TaskStatusAssigned},
	}}
	return service.NewHistoryService(store, getter), store
}

func TestAddComment_DualWrite(t *testing.T) {
	ctx := context.Background()
	svc, _ := newHistoryFixture()

	err := svc.AddComment(ctx, 1, "looks good", "alice")
	require.NoError(t, err)

	entries, err := svc.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.HistoryKindComment, entries[0].Kind)
	assert.Equal(t, "looks good", entries[0].Text)
	assert.Equal(t, "alice", entries[0].Author)

	assert.Equal(t, domain.HistoryKindActivity, entries[1].Kind)
	assert.Equal(t, "Comment added", entries[1].Text)
	assert.Equal(t, "alice", entries[1].Author)
}

func TestAddComment_DefaultAuthor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newHistoryFixture()

	require.NoError(t, svc.AddComment(ctx, 1, "anonymous note", ""))

	entries, err := svc.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, domain.SystemAuthor, entry.Author)
	}
}

func TestAddComment_UnknownTask(t *testing.T) {
	svc, _ := newHistoryFixture()

	err := svc.AddComment(context.Background(), 42, "ghost", "alice")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestAddComment_Empty(t *testing.T) {
	svc, _ := newHistoryFixture()

	err := svc.AddComment(context.Background(), 1, "   ", "alice")
	assert.ErrorIs(t, err, domain.ErrEmptyComment)
}

func TestHistory_SortedMerge(t *testing.T) {
	ctx := context.Background()
	svc, store := newHistoryFixture()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	entry := func(kind domain.HistoryKind, text string, at time.Time) domain.HistoryEntry {
		return domain.HistoryEntry{Kind: kind, TaskID: 1, Author: "alice", Text: text, Timestamp: at}
	}

	// Appended out of timestamp order on purpose.
	store.AppendActivity(entry(domain.HistoryKindActivity, "third", base.Add(3*time.Second)))
	store.AppendComment(entry(domain.HistoryKindComment, "first", base.Add(1*time.Second)))
	store.AppendActivity(entry(domain.HistoryKindActivity, "second", base.Add(2*time.Second)))

	entries, err := svc.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "first", entries[0].Text)
	assert.Equal(t, "second", entries[1].Text)
	assert.Equal(t, "third", entries[2].Text)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Timestamp.Before(entries[i-1].Timestamp))
	}
}

func TestHistory_EqualTimestampsCommentFirst(t *testing.T) {
	ctx := context.Background()
	svc, store := newHistoryFixture()
	at := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	// Activity recorded before the comment, but with the same timestamp the
	// comment sorts first.
	store.AppendActivity(domain.HistoryEntry{Kind: domain.HistoryKindActivity, TaskID: 1, Text: "activity", Timestamp: at})
	store.AppendComment(domain.HistoryEntry{Kind: domain.HistoryKindComment, TaskID: 1, Text: "comment", Timestamp: at})

	entries, err := svc.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.HistoryKindComment, entries[0].Kind)
	assert.Equal(t, domain.HistoryKindActivity, entries[1].Kind)
}

func TestHistory_CountMatchesAppends(t *testing.T) {
	ctx := context.Background()
	svc, _ := newHistoryFixture()

	for i := 0; i < 5; i++ {
		svc.RecordActivity(1, "tick", "")
	}
	require.NoError(t, svc.AddComment(ctx, 1, "note", "bob"))

	// 5 activities + 1 comment + the comment's correlated activity.
	entries, err := svc.History(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 7)
}

func TestHistory_UnknownTask(t *testing.T) {
	svc, _ := newHistoryFixture()

	_, err := svc.History(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
