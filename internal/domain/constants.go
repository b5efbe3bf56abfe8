package domain

// Вместимость слота
const (
	// MaxPlayers вместимость игрового стола
	MaxPlayers = 6

	// MinPlayers минимальное количество игроков для брони
	MinPlayers = 2

	// DefaultPlayers количество игроков в новом черновике брони
	DefaultPlayers = 4
)

// MaxMonthsAhead на сколько месяцев вперед открыта запись (включительно)
const MaxMonthsAhead = 3

// Форматы даты и времени
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// MonthNames названия месяцев для подписей слотов (в верхнем регистре, как на сайте)
var MonthNames = [12]string{
	"ЯНВАРЬ", "ФЕВРАЛЬ", "МАРТ", "АПРЕЛЬ", "МАЙ", "ИЮНЬ",
	"ИЮЛЬ", "АВГУСТ", "СЕНТЯБРЬ", "ОКТЯБРЬ", "НОЯБРЬ", "ДЕКАБРЬ",
}

// DaysOfWeek короткие названия дней недели, неделя начинается с понедельника
var DaysOfWeek = [7]string{"пн", "вт", "ср", "чт", "пт", "сб", "вс"}

// MaxCommentLength ограничение длины комментария к брони
const MaxCommentLength = 1000

// InactiveStatuses список статусов, не занимающих места в слоте
// Используется при подсчете занятых мест
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByClub,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих места в слоте
var ActiveStatuses = []BookingStatus{
	StatusPendingPayment,
	StatusAwaitingPayment,
	StatusConfirmed,
	StatusCompleted,
}
