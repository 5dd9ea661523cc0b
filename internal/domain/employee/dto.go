package employee

import (
	"context"

	"github.com/talentiq/talentiq-backend-go/internal/pkg/validator"
)

type SaveProfileRequest struct {
	Bio        *string  `json:"bio"`
	Skills     []string `json:"skills"`
	Education  *string  `json:"education"`
	Experience *string  `json:"experience"`
	Resume     *string  `json:"resume"`
}

func (r *SaveProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Bio != nil && len(*r.Bio) > 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "bio",
			Message: "bio must not exceed 2000 characters",
		})
	}
	if len(r.Skills) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "skills",
			Message: "skills must not exceed 50 entries",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	UserID     string   `json:"userId"`
	Bio        *string  `json:"bio"`
	Skills     []string `json:"skills"`
	Education  *string  `json:"education"`
	Experience *string  `json:"experience"`
	Resume     *string  `json:"resume"`
}

type EmployeeService interface {
	SaveProfile(ctx context.Context, userID string, req SaveProfileRequest) (ProfileResponse, error)
	GetProfile(ctx context.Context, userID string) (ProfileResponse, error)
}
