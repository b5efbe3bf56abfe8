package booking

import "github.com/questarium/QST-ScheduleService/pkg/txmanager"

// DBExecutor интерфейс для работы с БД
// Реализуется *sql.DB и *sql.Tx, репозиторий получает актуальный
// executor через txmanager
type DBExecutor = txmanager.Executor
