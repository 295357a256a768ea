package types

import (
	"time"

	"github.com/mesh-intelligence/roster/pkg/enum"
)

// Member is one person on the roster. Role and Status are enum-coded fields:
// the backend stores their integer codes and hydrates them back to labels.
type Member struct {
	MemberID  string     // UUID v7, generated on creation.
	Name      string     // Human-readable name (required, non-empty).
	Role      enum.Value // One of the Roles labels.
	Status    enum.Value // One of the Statuses labels.
	CreatedAt time.Time  // Timestamp of creation.
	UpdatedAt time.Time  // Timestamp of last modification.
}

// NewMember returns a Member with both enum fields at their default labels.
// The ID is assigned by the backend on first Set.
func NewMember(name string) *Member {
	now := time.Now()
	return &Member{
		Name:      name,
		Role:      enum.NewValue(Roles),
		Status:    enum.NewValue(Statuses),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetRole sets the member's role to the given label. Any role is reachable
// from any other. Returns enum.ErrUnknownLabel for an undefined label.
// The change is in-memory only; persist through a Table.
func (m *Member) SetRole(label string) error {
	v, err := m.Role.Set(label)
	if err != nil {
		return err
	}
	m.Role = v
	m.UpdatedAt = time.Now()
	return nil
}

// SetStatus sets the member's status to the given label.
// Same contract as SetRole.
func (m *Member) SetStatus(label string) error {
	v, err := m.Status.Set(label)
	if err != nil {
		return err
	}
	m.Status = v
	m.UpdatedAt = time.Now()
	return nil
}

// IsRole reports whether the member's role is currently the given label.
func (m *Member) IsRole(label string) bool { return m.Role.Is(label) }

// IsStatus reports whether the member's status is currently the given label.
func (m *Member) IsStatus(label string) bool { return m.Status.Is(label) }

// Validate checks that the member is well-formed for persistence.
func (m *Member) Validate() error {
	if m.Name == "" {
		return ErrInvalidName
	}
	return nil
}
