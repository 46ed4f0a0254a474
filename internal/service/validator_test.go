package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flynaut/workforcemgmt/internal/domain"
	"github.com/flynaut/workforcemgmt/internal/service"
)

func TestParseStatus(t *testing.T) {
	status, err := service.ParseStatus("STARTED")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusStarted, status)

	_, err = service.ParseStatus("IN_PROGRESS")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestParsePriority(t *testing.T) {
	priority, err := service.ParsePriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPriorityHigh, priority)

	_, err = service.ParsePriority("URGENT")
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)

	_, err = service.ParsePriority("")
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestParseReferenceType(t *testing.T) {
	rt, err := service.ParseReferenceType("TRIP")
	require.NoError(t, err)
	assert.Equal(t, domain.ReferenceTypeTrip, rt)

	_, err = service.ParseReferenceType("INVOICE")
	assert.ErrorIs(t, err, domain.ErrInvalidReferenceType)
}

func TestCheckRecordComplete(t *testing.T) {
	task := &domain.Task{
		ID:            7,
		ReferenceType: domain.ReferenceTypeOrder,
		Kind:          domain.TaskKindPack,
		Priority:      domain.TaskPriorityLow,
	}
	require.NoError(t, service.CheckRecordComplete(task))

	missingPriority := *task
	missingPriority.Priority = ""
	assert.ErrorIs(t, service.CheckRecordComplete(&missingPriority), domain.ErrInvalidTaskState)

	missingKind := *task
	missingKind.Kind = ""
	assert.ErrorIs(t, service.CheckRecordComplete(&missingKind), domain.ErrInvalidTaskState)

	missingRef := *task
	missingRef.ReferenceType = ""
	assert.ErrorIs(t, service.CheckRecordComplete(&missingRef), domain.ErrInvalidTaskState)
}
