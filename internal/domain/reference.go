package domain

// ReferenceType identifies the kind of external business object a task serves.
type ReferenceType string

const (
	ReferenceTypeOrder ReferenceType = "ORDER"
	ReferenceTypeTrip  ReferenceType = "TRIP"
)

// IsValid checks if the reference type is one of the allowed values.
func (rt ReferenceType) IsValid() bool {
	switch rt {
	case ReferenceTypeOrder, ReferenceTypeTrip:
		return true
	default:
		return false
	}
}

// TaskKind is a catalog entry describing what kind of work a task represents.
type TaskKind string

const (
	TaskKindCreateInvoice TaskKind = "CREATE_INVOICE"
	TaskKindArrangePickup TaskKind = "ARRANGE_PICKUP"
	TaskKindPack          TaskKind = "PACK"
	TaskKindAssignDriver  TaskKind = "ASSIGN_DRIVER"
	TaskKindPlanRoute     TaskKind = "PLAN_ROUTE"
)

// IsValid checks if the kind is one of the catalog values.
func (k TaskKind) IsValid() bool {
	switch k {
	case TaskKindCreateInvoice, TaskKindArrangePickup, TaskKindPack,
		TaskKindAssignDriver, TaskKindPlanRoute:
		return true
	default:
		return false
	}
}

// referenceKinds maps each reference type to the ordered set of task kinds
// required to process it. Consulted by the reassignment protocol.
var referenceKinds = map[ReferenceType][]TaskKind{
	ReferenceTypeOrder: {TaskKindCreateInvoice, TaskKindArrangePickup, TaskKindPack},
	ReferenceTypeTrip:  {TaskKindAssignDriver, TaskKindPlanRoute},
}

// KindsForReferenceType returns the ordered task kinds applicable to a
// reference type. The returned slice is a copy; callers may modify it.
func KindsForReferenceType(rt ReferenceType) []TaskKind {
	kinds, ok := referenceKinds[rt]
	if !ok {
		return nil
	}
	out := make([]TaskKind, len(kinds))
	copy(out, kinds)
	return out
}
