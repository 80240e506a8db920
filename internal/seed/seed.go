// Package seed демо данные для локального запуска: преподаватели, студенты и окна на завтра.
// Повторный запуск пропускает уже заведенных пользователей и опубликованные окна
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	publishAvailability "github.com/m04kA/SMC-ClassBookingService/internal/usecase/publish_availability"
	registerUser "github.com/m04kA/SMC-ClassBookingService/internal/usecase/register_user"
)

const (
	studentsCount = 15
	windowEnd     = "17:00"
)

type teacher struct {
	id, firstName, lastName, email, phone, subject string
}

var teachers = []teacher{
	{"teacher-1", "Alice", "Matheson", "alice@school.com", "+911111111111", "Mathematics"},
	{"teacher-2", "Bob", "Physico", "bob@school.com", "+922222222222", "English"},
	{"teacher-3", "Charlie", "Chemlord", "charlie@school.com", "+933333333333", "Chemistry"},
}

// Registrar заведение пользователей
type Registrar interface {
	Execute(ctx context.Context, req *registerUser.Request) (*registerUser.Response, error)
}

// Publisher публикация окон на завтра
type Publisher interface {
	Execute(ctx context.Context, req *publishAvailability.Request) (*publishAvailability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Result сколько записей создано и сколько уже было
type Result struct {
	Teachers int
	Students int
	Windows  int
	Existing int
}

// Run заводит 3 преподавателей, 15 студентов и по окну на каждого преподавателя
// с 10:00, 11:00 и 12:00 до 17:00
func Run(ctx context.Context, registrar Registrar, publisher Publisher, logger Logger) (*Result, error) {
	res := &Result{}

	for _, t := range teachers {
		phone := t.phone
		created, err := register(ctx, registrar, &registerUser.Request{
			ID:        t.id,
			Role:      string(domain.RoleTeacher),
			FirstName: t.firstName,
			LastName:  t.lastName,
			Email:     t.email,
			Phone:     &phone,
		})
		if err != nil {
			return res, err
		}
		if created {
			res.Teachers++
		} else {
			res.Existing++
		}
	}

	for i := 1; i <= studentsCount; i++ {
		phone := fmt.Sprintf("+9199000000%02d", i)
		created, err := register(ctx, registrar, &registerUser.Request{
			ID:        fmt.Sprintf("student-%d", i),
			Role:      string(domain.RoleStudent),
			FirstName: fmt.Sprintf("Student%d", i),
			LastName:  "Test",
			Email:     fmt.Sprintf("student%d@school.com", i),
			Phone:     &phone,
		})
		if err != nil {
			return res, err
		}
		if created {
			res.Students++
		} else {
			res.Existing++
		}
	}

	for i, t := range teachers {
		_, err := publisher.Execute(ctx, &publishAvailability.Request{
			TeacherID: t.id,
			Subject:   t.subject,
			StartTime: fmt.Sprintf("%d:00", 10+i),
			EndTime:   windowEnd,
		})
		switch {
		case errors.Is(err, domain.ErrOverlap):
			res.Existing++
		case err != nil:
			return res, fmt.Errorf("seed: publish window for %s: %w", t.id, err)
		default:
			res.Windows++
		}
	}

	logger.Info("Seed: teachers=%d, students=%d, windows=%d, existing=%d",
		res.Teachers, res.Students, res.Windows, res.Existing)
	return res, nil
}

func register(ctx context.Context, registrar Registrar, req *registerUser.Request) (bool, error) {
	_, err := registrar.Execute(ctx, req)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("seed: register %s: %w", req.ID, err)
	}
	return true, nil
}
