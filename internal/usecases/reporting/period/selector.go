package period

import (
	"errors"
	"fmt"

	"github.com/franbz1/hotel-san-miguel/internal/domain"
)

var ErrUnsupportedPeriodType = errors.New("tipo de período não suportado, use day, week, month ou year")

// Select devolve a estratégia do token de período. Só aceita os tokens exatos, em minúsculas.
func Select(periodType string) (Strategy, error) {
	switch domain.PeriodType(periodType) {
	case domain.PeriodDay:
		return DayStrategy{}, nil
	case domain.PeriodWeek:
		return WeekStrategy{}, nil
	case domain.PeriodMonth:
		return MonthStrategy{}, nil
	case domain.PeriodYear:
		return YearStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (valores aceitos: day, week, month, year)", ErrUnsupportedPeriodType, periodType)
	}
}
