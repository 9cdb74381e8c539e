package rules

import "context"

// RulesService defines business logic for the attendance rules document.
type RulesService interface {
	// Get retrieves the current rules
	Get(ctx context.Context) (RulesResponse, error)

	// Update applies a partial update of whole sections
	Update(ctx context.Context, req UpdateRulesRequest) (RulesResponse, error)

	// UpdateField applies a single dotted-path field update
	UpdateField(ctx context.Context, req UpdateFieldRequest) (RulesResponse, error)
}
