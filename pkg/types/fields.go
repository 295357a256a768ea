package types

import "github.com/mesh-intelligence/roster/pkg/enum"

// Enum field names recognized by Table.Fetch filters and Table.SetField.
const (
	FieldRole   = "role"
	FieldStatus = "status"
)

// Role labels. Declaration order fixes the integer codes the backend stores,
// so new roles are appended at the end and existing entries never move.
const (
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
	RoleVendor    = "vendor"
	RoleCustomer  = "customer"
)

// Status labels. Same ordering rule as roles.
const (
	StatusInvited   = "invited"
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusDeparted  = "departed"
)

// Roles defines the member role field. New members default to volunteer.
var Roles = enum.MustDefinition(RoleVolunteer, RoleAdmin, RoleVendor, RoleCustomer)

// Statuses defines the member status field. New members default to invited.
var Statuses = enum.MustDefinition(StatusInvited, StatusActive, StatusSuspended, StatusDeparted)

// FieldDefinition returns the enum definition backing the named field.
// Returns ErrUnknownField for a name other than FieldRole or FieldStatus.
func FieldDefinition(field string) (enum.Definition, error) {
	switch field {
	case FieldRole:
		return Roles, nil
	case FieldStatus:
		return Statuses, nil
	default:
		return enum.Definition{}, ErrUnknownField
	}
}
