package memory

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/user"
)

type userRecord struct {
	user domain.User
}

// Users пользователи в памяти
type Users struct {
	s *Store
}

// Create сохраняет пользователя; пустой ID заменяется сгенерированным.
// ID и непустой email уникальны
func (r *Users) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	rec := &userRecord{user: *u}
	if rec.user.ID == "" {
		rec.user.ID = r.s.newID()
	}

	var err error
	r.s.write(ctx, func() {
		for _, existing := range r.s.users {
			if existing.user.ID == rec.user.ID || (rec.user.Email != "" && existing.user.Email == rec.user.Email) {
				err = fmt.Errorf("%w: Create - id=%s email=%s", userRepo.ErrUserExists, rec.user.ID, rec.user.Email)
				return
			}
		}
		r.s.users = append(r.s.users, rec)
	})
	if err != nil {
		return nil, err
	}

	out := rec.user
	return &out, nil
}

func (r *Users) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rec := range r.s.users {
		if rec.user.ID == id {
			out := rec.user
			return &out, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *Users) GetByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	result := make(map[string]*domain.User, len(ids))
	for _, rec := range r.s.users {
		if _, ok := wanted[rec.user.ID]; ok {
			out := rec.user
			result[out.ID] = &out
		}
	}
	return result, nil
}

// ListActiveStudents активные студенты в порядке добавления
func (r *Users) ListActiveStudents(_ context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.User
	for _, rec := range r.s.users {
		if rec.user.Role == domain.RoleStudent && rec.user.IsActive {
			out := rec.user
			result = append(result, &out)
		}
	}
	return result, nil
}
