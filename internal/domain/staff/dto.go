package staff

import (
	"strings"

	"github.com/acss-labs/acss-backend-go/internal/pkg/validator"
)

var validStatuses = []string{
	StatusPresent, StatusAbsent, StatusActive, StatusInactive,
	StatusCheckedIn, StatusCheckedOut, StatusLate, StatusHalfDay,
}

type RegisterStaffRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	BadgeID    string `json:"badge_id"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
}

func (r *RegisterStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}
	if r.Status == "" {
		r.Status = StatusPresent
	} else if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(validStatuses, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	BadgeID    *string `json:"badge_id,omitempty"`
	Email      *string `json:"email,omitempty"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(validStatuses, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	BadgeID    string `json:"badge_id,omitempty"`
	Email      string `json:"email,omitempty"`
	Position   string `json:"position,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func MapStaffToResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:         s.ID,
		Name:       s.Name,
		Department: s.Department,
		BadgeID:    s.BadgeID,
		Email:      s.Email,
		Position:   s.Position,
		Phone:      s.Phone,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ListStaffResponse struct {
	TotalCount int             `json:"total_count"`
	Staff      []StaffResponse `json:"staff"`
}

// Matches reports whether the member matches a roster search term, checked
// against name, email, position, department and badge id (case-insensitive).
func (s Staff) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{s.Name, s.Email, s.Position, s.Department, s.BadgeID} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
