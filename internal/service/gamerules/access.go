package gamerules

import (
	"fmt"
	"time"
)

// Access описывает результат проверки доступа к загадке дня
type Access struct {
	// Unlocked — доступна ли загадка пользователю
	Unlocked bool

	// CatchUp — доступ выдан в режиме "догона": день не старше текущего,
	// хотя предыдущий день не решён
	CatchUp bool

	// Reason — человекочитаемое пояснение. Пустое при обычном открытии;
	// при catch-up содержит пояснение режима, при блокировке — причину.
	Reason string

	// LockedUntil — момент открытия дня, если день ещё не наступил
	LockedUntil *time.Time
}

// EvaluateAccess вычисляет доступность загадки дня.
// День 1 открыт всегда. День N>1 открыт обычным образом, если решён день N-1.
// Иначе действует режим "догона": любой день не позже текущего доступен,
// но помечается флагом CatchUp с пояснением. Будущие дни заблокированы.
func (c *Config) EvaluateAccess(day, currentDay int, prevCompleted bool) Access {
	if day < 1 || day > c.TotalDays {
		return Access{
			Unlocked: false,
			Reason:   fmt.Sprintf("День %d вне кампании (доступны дни 1-%d)", day, c.TotalDays),
		}
	}

	if day > currentDay {
		until := c.UnlockDate(day)
		return Access{
			Unlocked:    false,
			Reason:      fmt.Sprintf("Загадка дня %d откроется %s", day, until.Format("02.01.2006")),
			LockedUntil: &until,
		}
	}

	if day == 1 || prevCompleted {
		return Access{Unlocked: true}
	}

	return Access{
		Unlocked: true,
		CatchUp:  true,
		Reason:   fmt.Sprintf("Режим догона: день %d ещё не решён", day-1),
	}
}
