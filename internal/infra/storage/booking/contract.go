package booking

import (
	"github.com/m04kA/SMC-ClassBookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// IDGenerator источник идентификаторов новых записей
type IDGenerator func() string
