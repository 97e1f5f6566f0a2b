package gamerules

import (
	"time"
)

// CooldownState описывает состояние кулдауна пользователя по одному дню
type CooldownState struct {
	// Active — кулдаун открыт и ещё не истёк, сабмиты запрещены
	Active bool

	// RemainingSeconds — оставшиеся секунды кулдауна (ceil, минимум 1 при Active)
	RemainingSeconds int

	// Attempts — счетчик попыток, который следует сообщить клиенту
	Attempts int

	// NeedsReset — кулдаун истёк при счетчике на/выше порога:
	// вызывающий код должен один раз персистентно сбросить счетчик
	NeedsReset bool
}

// EvaluateCooldown вычисляет состояние кулдауна по сохранённым полям.
// Счетчик не сбрасывается в момент открытия окна — только после его
// истечения, и ровно один раз: повторная оценка после сброса ничего не меняет.
func (c *Config) EvaluateCooldown(attempts int, cooldownUntil *time.Time, now time.Time) CooldownState {
	if cooldownUntil != nil && cooldownUntil.After(now) {
		remaining := cooldownUntil.Sub(now)
		seconds := int((remaining + time.Second - 1) / time.Second)
		return CooldownState{
			Active:           true,
			RemainingSeconds: seconds,
			Attempts:         attempts,
		}
	}

	// Кулдаун истёк (или не открывался). Сброс полагается только записям,
	// которые дошли до порога.
	if cooldownUntil != nil && attempts >= c.AttemptsBeforeCooldown {
		return CooldownState{
			Attempts:   0,
			NeedsReset: true,
		}
	}

	return CooldownState{Attempts: attempts}
}
