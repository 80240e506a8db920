package user

import "github.com/m04kA/SMC-ClassBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
