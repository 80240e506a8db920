package register_user

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

const maxNameLength = 100

func validateRequest(req *Request) (*domain.User, error) {
	role := domain.Role(strings.TrimSpace(req.Role))
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: role must be %q or %q", domain.ErrInvalidInput, domain.RoleStudent, domain.RoleTeacher)
	}

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return nil, fmt.Errorf("%w: first name is required", domain.ErrInvalidInput)
	}
	lastName := strings.TrimSpace(req.LastName)
	if len(firstName) > maxNameLength || len(lastName) > maxNameLength {
		return nil, fmt.Errorf("%w: name is longer than %d", domain.ErrInvalidInput, maxNameLength)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, fmt.Errorf("%w: email %q is invalid", domain.ErrInvalidInput, req.Email)
	}

	var phone *string
	if req.Phone != nil {
		if p := strings.TrimSpace(*req.Phone); p != "" {
			phone = &p
		}
	}

	return &domain.User{
		ID:        strings.TrimSpace(req.ID),
		Role:      role,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		IsActive:  !req.Inactive,
	}, nil
}
