package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flynaut/workforcemgmt/internal/domain"
)

func TestKindsForReferenceType(t *testing.T) {
	kinds := domain.KindsForReferenceType(domain.ReferenceTypeOrder)
	require.Equal(t, []domain.TaskKind{
		domain.TaskKindCreateInvoice,
		domain.TaskKindArrangePickup,
		domain.TaskKindPack,
	}, kinds)

	kinds = domain.KindsForReferenceType(domain.ReferenceTypeTrip)
	require.Equal(t, []domain.TaskKind{
		domain.TaskKindAssignDriver,
		domain.TaskKindPlanRoute,
	}, kinds)
}

func TestKindsForReferenceType_Unknown(t *testing.T) {
	assert.Nil(t, domain.KindsForReferenceType("WAREHOUSE"))
}

func TestKindsForReferenceType_ReturnsCopy(t *testing.T) {
	kinds := domain.KindsForReferenceType(domain.ReferenceTypeTrip)
	kinds[0] = domain.TaskKindPack

	again := domain.KindsForReferenceType(domain.ReferenceTypeTrip)
	assert.Equal(t, domain.TaskKindAssignDriver, again[0])
}

func TestTaskStatusPredicates(t *testing.T) {
	assert.True(t, domain.TaskStatusCompleted.IsTerminal())
	assert.True(t, domain.TaskStatusCancelled.IsTerminal())
	assert.False(t, domain.TaskStatusAssigned.IsTerminal())
	assert.False(t, domain.TaskStatusStarted.IsTerminal())

	assert.True(t, domain.TaskStatusAssigned.IsOpen())
	assert.True(t, domain.TaskStatusStarted.IsOpen())
	assert.False(t, domain.TaskStatusCompleted.IsOpen())
	assert.False(t, domain.TaskStatusCancelled.IsOpen())

	assert.False(t, domain.TaskStatus("DONE").IsValid())
}
