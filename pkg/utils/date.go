package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta uma data de calendário no formato YYYY-MM-DD em UTC.
// Datas inexistentes (ex: 2023-02-29) são rejeitadas.
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(dateStr), time.UTC)
}

// StartOfDay retorna a meia-noite UTC da data informada
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay retorna o último milissegundo da data informada (23:59:59.999 UTC)
func EndOfDay(date time.Time) time.Time {
	return StartOfDay(date).Add(24*time.Hour - time.Millisecond)
}

// FirstDayOfMonth retorna o primeiro dia do mês em UTC. Meses fora de 1-12 são normalizados por time.Date.
func FirstDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
