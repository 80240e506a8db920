package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/pkg/dbmetrics"
)

// ErrTransaction ошибка управления транзакцией (begin/commit)
var ErrTransaction = errors.New("txmanager: transaction error")

// TxBeginner источник транзакций (реализуется *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Manager выполняет функции внутри транзакции, передавая её через контекст
type Manager struct {
	db    TxBeginner
	retry RetryPolicy
	sleep func(time.Duration)
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner, retry RetryPolicy) *Manager {
	return &Manager{
		db:    db,
		retry: retry,
		sleep: time.Sleep,
	}
}

// Do выполняет fn в транзакции READ COMMITTED
// Каждый запрос внутри fn видит данные, зафиксированные к его началу, поэтому
// чтение после advisory-блокировки учитывает коммиты предыдущего владельца блокировки.
// При дедлоке (40P01) или конфликте сериализации (40001) функция повторяется
// не более retry.MaxRetries раз
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelReadCommitted}

	var err error
	for attempt := 0; ; attempt++ {
		err = m.run(ctx, opts, fn)
		if err == nil || !IsRetryable(err) || attempt >= m.retry.MaxRetries || dbmetrics.IsInTransaction(ctx) {
			return err
		}

		select {
		case <-ctx.Done():
			return err
		default:
		}
		m.sleep(m.retry.NextDelay(attempt + 1))
	}
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w: rollback: %v (original error: %w)", ErrTransaction, rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}

	return nil
}
