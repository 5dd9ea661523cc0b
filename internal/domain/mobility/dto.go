package mobility

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentiq/talentiq-backend-go/internal/pkg/validator"
)

// StringOrList accepts either a JSON string or an array of strings; an array
// contributes only its first element. Clients historically sent both shapes
// for department and position, so the coercion is explicit at the boundary.
type StringOrList struct {
	value string
	set   bool
}

func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.value = str
		s.set = true
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		if len(list) > 0 {
			s.value = list[0]
			s.set = true
		}
		return nil
	}

	return fmt.Errorf("expected string or array of strings, got %s", string(data))
}

func (s StringOrList) Value() string {
	return s.value
}

func (s StringOrList) IsSet() bool {
	return s.set && s.value != ""
}

// Salary accepts a JSON number or string and keeps the literal text; the
// persisted salary is always its string representation.
type Salary struct {
	raw string
	set bool
}

func (s *Salary) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s.raw = str
		s.set = true
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected number or string, got %s", string(data))
	}
	s.raw = n.String()
	s.set = true
	return nil
}

func (s Salary) String() string {
	return s.raw
}

func (s Salary) IsSet() bool {
	return s.set && s.raw != ""
}

func (s Salary) IsNumeric() bool {
	return validator.IsNumericValue(s.raw)
}

// Promotion accepts a bool, a string, or null, normalized to a string or
// nil. Booleans become the literals "true"/"false".
type Promotion struct {
	value *string
}

func (p *Promotion) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		v := "false"
		if b {
			v = "true"
		}
		p.value = &v
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		p.value = &str
		return nil
	}

	return fmt.Errorf("expected boolean, string or null, got %s", string(data))
}

func (p Promotion) Value() *string {
	return p.value
}

type UpdateMobilityRequest struct {
	Department StringOrList `json:"department"`
	Position   StringOrList `json:"position"`
	Salary     Salary       `json:"salary"`
	UserID     string       `json:"userId"`
	Transfer   bool         `json:"transfer"`
	Promotion  Promotion    `json:"promotion"`
}

func (r *UpdateMobilityRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Department.IsSet() {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if !r.Position.IsSet() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if !r.Salary.IsSet() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary is required",
		})
	} else if !r.Salary.IsNumeric() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must be a number",
		})
	}
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MobilityUser echoes the updated history arrays and salary back to the
// caller; the shape is part of the external interface.
type MobilityUser struct {
	Department []string `json:"department"`
	Position   []string `json:"position"`
	Salary     string   `json:"salary"`
}

type UpdateMobilityResponse struct {
	Message string       `json:"message"`
	User    MobilityUser `json:"user"`
}

type MobilityService interface {
	// UpdateMobility applies the department/position/salary change for the
	// acting HR, recording transfer ledger entries when requested.
	UpdateMobility(ctx context.Context, hrID string, req UpdateMobilityRequest) (UpdateMobilityResponse, error)
}
