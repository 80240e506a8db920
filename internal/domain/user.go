package domain

import "time"

// Role роль пользователя, выданная сервисом идентификации
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// IsValid проверяет, что роль известна
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User участник системы (студент или преподаватель)
type User struct {
	ID        string
	Role      Role
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
}

// FullName имя и фамилия через пробел
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
