package repository

// Three-state fields for partial updates. The zero value means the
// field was not supplied and the stored value is kept; Null clears the
// column; otherwise Value is written. One explicit type per column
// kind keeps the SET-clause builders trivial.

// OptString is a three-state string field.
type OptString struct {
	Set   bool
	Null  bool
	Value string
}

// OptFloat is a three-state decimal field.
type OptFloat struct {
	Set   bool
	Null  bool
	Value float64
}

// OptUint is a three-state id field.
type OptUint struct {
	Set   bool
	Null  bool
	Value uint64
}

// OptInt is a three-state integer field.
type OptInt struct {
	Set   bool
	Null  bool
	Value int
}

// CrewAssignmentUpdate describes a partial update of a crew
// assignment. Status cannot be cleared, only changed.
type CrewAssignmentUpdate struct {
	PositionID   OptUint
	CallTime     OptString
	EndTime      OptString
	RateOverride OptFloat
	Status       OptString
	Notes        OptString
}

// Empty reports whether no field was supplied.
func (u CrewAssignmentUpdate) Empty() bool {
	return !u.PositionID.Set && !u.CallTime.Set && !u.EndTime.Set &&
		!u.RateOverride.Set && !u.Status.Set && !u.Notes.Set
}

// EquipmentAssignmentUpdate describes a partial update of an equipment
// assignment.
type EquipmentAssignmentUpdate struct {
	Quantity     OptInt
	RateOverride OptFloat
	Notes        OptString
}

// Empty reports whether no field was supplied.
func (u EquipmentAssignmentUpdate) Empty() bool {
	return !u.Quantity.Set && !u.RateOverride.Set && !u.Notes.Set
}
