package register_user

import (
	"time"

	registerUser "github.com/m04kA/SMC-ClassBookingService/internal/usecase/register_user"
)

// RegisterUserRequest HTTP request model
type RegisterUserRequest struct {
	ID        string  `json:"id,omitempty"` // ID из сервиса идентификации, пусто - сгенерировать
	Role      string  `json:"role"`         // "student" | "teacher"
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName,omitempty"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Inactive  bool    `json:"inactive,omitempty"`
}

// UserResponse HTTP response model
type UserResponse struct {
	ID        string  `json:"id"`
	Role      string  `json:"role"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt"`
}

func (r *RegisterUserRequest) ToUseCaseRequest() *registerUser.Request {
	return &registerUser.Request{
		ID:        r.ID,
		Role:      r.Role,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Inactive:  r.Inactive,
	}
}

func FromUseCaseResponse(resp *registerUser.Response) *UserResponse {
	return &UserResponse{
		ID:        resp.ID,
		Role:      resp.Role,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Email:     resp.Email,
		Phone:     resp.Phone,
		IsActive:  resp.IsActive,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
