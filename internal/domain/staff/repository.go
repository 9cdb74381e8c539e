package staff

import "context"

// StaffRepository defines data access for the staff roster (the original
// system's "registration" collection).
type StaffRepository interface {
	// Create inserts a new roster member
	Create(ctx context.Context, s Staff) (Staff, error)

	// GetByID retrieves a member; removed members are excluded
	GetByID(ctx context.Context, id string) (Staff, error)

	// GetByBadgeID retrieves a member by hardware credential
	GetByBadgeID(ctx context.Context, badgeID string) (Staff, error)

	// List returns the full roster, removed members excluded
	List(ctx context.Context) ([]Staff, error)

	// Update writes mutable fields of an existing member
	Update(ctx context.Context, s Staff) error

	// SoftRemove marks a member removed without deleting the row; attendance
	// history stays intact
	SoftRemove(ctx context.Context, id string) error

	// Delete physically removes a member (only valid when no attendance
	// history exists)
	Delete(ctx context.Context, id string) error
}
