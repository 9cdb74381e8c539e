package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/acss-labs/acss-backend-go/internal/cache"
	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
)

// DefaultRules seeds the singleton document the first time it is read.
var DefaultRules = rules.Rules{
	WorkStart:            rules.ClockTime{Hour: 9, Minute: 0},
	WorkEnd:              rules.ClockTime{Hour: 17, Minute: 0},
	LateThresholdMinutes: 15,
	MinimumHours:         4,
	WeekendDays:          []int{0, 6},
}

type RulesServiceImpl struct {
	rules.RulesRepository
	snapshot *cache.Snapshot
}

func NewRulesService(rulesRepository rules.RulesRepository, snapshot *cache.Snapshot) rules.RulesService {
	return &RulesServiceImpl{
		RulesRepository: rulesRepository,
		snapshot:        snapshot,
	}
}

// Get implements rules.RulesService. A missing document is created from the
// defaults rather than reported as an error.
func (s *RulesServiceImpl) Get(ctx context.Context) (rules.RulesResponse, error) {
	current, err := s.current(ctx)
	if err != nil {
		return rules.RulesResponse{}, err
	}
	return rules.MapRulesToResponse(current), nil
}

// Update implements rules.RulesService.
func (s *RulesServiceImpl) Update(ctx context.Context, req rules.UpdateRulesRequest) (rules.RulesResponse, error) {
	if err := req.Validate(); err != nil {
		return rules.RulesResponse{}, err
	}

	current, err := s.current(ctx)
	if err != nil {
		return rules.RulesResponse{}, err
	}

	if req.WorkStart != nil {
		current.WorkStart = *req.WorkStart
	}
	if req.WorkEnd != nil {
		current.WorkEnd = *req.WorkEnd
	}
	if req.LateThresholdMinutes != nil {
		current.LateThresholdMinutes = *req.LateThresholdMinutes
	}
	if req.MinimumHours != nil {
		current.MinimumHours = *req.MinimumHours
	}
	if req.WeekendDays != nil {
		current.WeekendDays = req.WeekendDays
	}

	if err := s.save(ctx, current); err != nil {
		return rules.RulesResponse{}, err
	}
	return rules.MapRulesToResponse(current), nil
}

// UpdateField implements rules.RulesService.
func (s *RulesServiceImpl) UpdateField(ctx context.Context, req rules.UpdateFieldRequest) (rules.RulesResponse, error) {
	if err := req.Validate(); err != nil {
		return rules.RulesResponse{}, err
	}

	current, err := s.current(ctx)
	if err != nil {
		return rules.RulesResponse{}, err
	}

	updated, err := req.Apply(current)
	if err != nil {
		return rules.RulesResponse{}, err
	}

	if err := s.save(ctx, updated); err != nil {
		return rules.RulesResponse{}, err
	}
	return rules.MapRulesToResponse(updated), nil
}

func (s *RulesServiceImpl) current(ctx context.Context) (rules.Rules, error) {
	current, err := s.RulesRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, rules.ErrRulesNotFound) {
			if err := s.RulesRepository.Save(ctx, DefaultRules); err != nil {
				return rules.Rules{}, fmt.Errorf("failed to seed default rules: %w", err)
			}
			return DefaultRules, nil
		}
		return rules.Rules{}, fmt.Errorf("failed to load rules: %w", err)
	}
	return current, nil
}

func (s *RulesServiceImpl) save(ctx context.Context, r rules.Rules) error {
	if err := s.RulesRepository.Save(ctx, r); err != nil {
		return fmt.Errorf("failed to save rules: %w", err)
	}
	if s.snapshot != nil {
		_ = s.snapshot.Load(ctx)
	}
	return nil
}
