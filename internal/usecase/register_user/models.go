package register_user

import "time"

// Request регистрация профиля, выданного сервисом идентификации
type Request struct {
	ID        string // пусто - сгенерировать
	Role      string
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Inactive  bool
}

// Response созданный пользователь
type Response struct {
	ID        string
	Role      string
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
}
