package booking

import (
	"github.com/yaday/YND-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics:
// репозиторий одинаково работает с *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
