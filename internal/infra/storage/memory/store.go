// Package memory хранилище в памяти процесса: те же контракты, что у postgres репозиториев.
// Порядок выборок совпадает с порядком вставки
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type txKey struct{}

// Store общее состояние пользователей, окон и бронирований.
// Транзакции выполняются строго по одной (txMu), откат восстанавливает снимок
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	users          []*userRecord
	availabilities []*availabilityRecord
	bookings       []*bookingRecord

	newID func() string
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Users репозиторий пользователей
func (s *Store) Users() *Users {
	return &Users{s: s}
}

// Availabilities репозиторий окон
func (s *Store) Availabilities() *Availabilities {
	return &Availabilities{s: s}
}

// Bookings репозиторий бронирований
func (s *Store) Bookings() *Bookings {
	return &Bookings{s: s}
}

// TxManager менеджер транзакций хранилища
func (s *Store) TxManager() *TxManager {
	return &TxManager{s: s}
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// write выполняет изменение. Вне транзакции изменение ждет завершения текущей транзакции
func (s *Store) write(ctx context.Context, fn func()) {
	if !s.inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

type snapshot struct {
	users          []*userRecord
	availabilities []*availabilityRecord
	bookings       []*bookingRecord
}

// Записи неизменяемы после вставки, поэтому снимка среза достаточно
func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		users:          append([]*userRecord(nil), s.users...),
		availabilities: append([]*availabilityRecord(nil), s.availabilities...),
		bookings:       append([]*bookingRecord(nil), s.bookings...),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.availabilities = snap.availabilities
	s.bookings = snap.bookings
}

// TxManager транзакции над Store
type TxManager struct {
	s *Store
}

// Do выполняет fn атомарно: при ошибке все изменения fn откатываются
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.s.inTx(ctx) {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	snap := m.s.snapshot()
	committed := false
	defer func() {
		if !committed {
			m.s.restore(snap)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, m.s)); err != nil {
		return err
	}
	committed = true
	return nil
}
