package utils

import "time"

// CurrentPeriod retorna o mês (1-12) e o ano de t
func CurrentPeriod(t time.Time) (int, int) {
	return int(t.Month()), t.Year()
}
