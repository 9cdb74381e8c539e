package rules

import "context"

// RulesRepository defines data access for the attendance rules singleton.
type RulesRepository interface {
	// Get retrieves the rules document
	Get(ctx context.Context) (Rules, error)

	// Save writes the full rules document, creating it if missing
	Save(ctx context.Context, r Rules) error
}
