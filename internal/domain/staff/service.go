package staff

import "context"

// StaffService defines business logic for roster management.
type StaffService interface {
	// Register adds a new staff member to the roster
	Register(ctx context.Context, req RegisterStaffRequest) (StaffResponse, error)

	// Get retrieves a single member
	Get(ctx context.Context, id string) (StaffResponse, error)

	// List returns the roster, optionally filtered by a search term
	List(ctx context.Context, search string) (ListStaffResponse, error)

	// Update edits member fields
	Update(ctx context.Context, req UpdateStaffRequest) (StaffResponse, error)

	// ToggleStatus flips a member between present and absent
	ToggleStatus(ctx context.Context, id string) (StaffResponse, error)

	// Remove soft-removes a member with attendance history, hard-deletes one
	// without
	Remove(ctx context.Context, id string) error
}
