package register_user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
	"github.com/m04kA/SMC-ClassBookingService/pkg/logger"
)

var now = time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)

func TestExecuteRegistersStudent(t *testing.T) {
	store := memory.NewStore()
	uc := NewUseCase(store.Users(), clock.NewFixed(now), logger.NewNop())
	phone := " +79990000001 "

	resp, err := uc.Execute(context.Background(), &Request{
		ID:        "s1",
		Role:      "student",
		FirstName: " Ivan ",
		LastName:  "Ivanov",
		Email:     "Ivan@School.ru",
		Phone:     &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "s1", resp.ID)
	assert.Equal(t, "Ivan", resp.FirstName)
	assert.Equal(t, "ivan@school.ru", resp.Email)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, "+79990000001", *resp.Phone)
	assert.True(t, resp.IsActive)
	assert.Equal(t, now, resp.CreatedAt)

	students, err := store.Users().ListActiveStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "s1", students[0].ID)
}

func TestExecuteGeneratesID(t *testing.T) {
	uc := NewUseCase(memory.NewStore().Users(), clock.NewFixed(now), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Role: "teacher", FirstName: "Anna", Email: "anna@school.ru"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "teacher", resp.Role)
}

func TestExecuteDuplicate(t *testing.T) {
	uc := NewUseCase(memory.NewStore().Users(), clock.NewFixed(now), logger.NewNop())
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{ID: "s1", Role: "student", FirstName: "Ivan", Email: "ivan@school.ru"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{ID: "s2", Role: "student", FirstName: "Petr", Email: "IVAN@school.ru"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(memory.NewStore().Users(), clock.NewFixed(now), logger.NewNop())

	tests := []struct {
		name string
		req  Request
	}{
		{name: "unknown role", req: Request{Role: "admin", FirstName: "A", Email: "a@school.ru"}},
		{name: "no first name", req: Request{Role: "student", Email: "a@school.ru"}},
		{name: "bad email", req: Request{Role: "student", FirstName: "A", Email: "not-an-email"}},
		{name: "display name email", req: Request{Role: "student", FirstName: "A", Email: "A <a@school.ru>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(*domain.User)
	return created, args.Error(1)
}

func TestExecuteStoreError(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil, errors.New("connection refused"))
	uc := NewUseCase(repo, clock.NewFixed(now), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Role: "student", FirstName: "A", Email: "a@school.ru"})

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	repo.AssertExpectations(t)
}
