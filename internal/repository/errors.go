// Package repository defines error types that are reused across
// multiple repositories. These sentinel values allow higher layers
// such as services and handlers to distinguish between failure
// scenarios: ErrConflict signals a duplicate (event, resource)
// assignment pair rejected by the store's unique key, while the
// not-found sentinels cover missing or inactive reference rows.
package repository

import (
	"errors"
	"strings"
)

// ErrConflict is returned when an insert collides with the unique
// (event, resource) key on an assignment table. Single-item creates
// surface it as HTTP 409; bulk creates swallow it per item.
var ErrConflict = errors.New("conflict")

// ErrEventNotFound is returned when a referenced event does not exist.
var ErrEventNotFound = errors.New("event not found")

// ErrCrewMemberNotFound is returned when a referenced crew member does
// not exist. Inactive members are reported identically for assignment
// purposes.
var ErrCrewMemberNotFound = errors.New("crew member not found")

// ErrEquipmentNotFound is the equipment counterpart of
// ErrCrewMemberNotFound.
var ErrEquipmentNotFound = errors.New("equipment not found")

// ErrPositionNotFound is returned when a referenced position does not
// exist.
var ErrPositionNotFound = errors.New("position not found")

// ErrAssignmentNotFound is returned when an assignment id matches no
// row on update or delete.
var ErrAssignmentNotFound = errors.New("assignment not found")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error code 1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
