package period

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
)

type MonthStrategy struct{}

func (MonthStrategy) Type() domain.PeriodType { return domain.PeriodMonth }

func (MonthStrategy) IntervalUnit() string { return "month" }

func (MonthStrategy) Truncate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (MonthStrategy) next(t time.Time) time.Time { return t.AddDate(0, 1, 0) }

// As datas das reservas são comparadas truncadas ao dia, por isso o fim do balde é o último dia do mês
func (MonthStrategy) bucketEndOffset() string { return "1 day" }

func (MonthStrategy) BucketEnd(start time.Time) time.Time {
	return start.AddDate(0, 1, -1)
}

func (s MonthStrategy) GenerateSeries(start, end time.Time) []time.Time {
	return generateSeries(s, start, end)
}

func (s MonthStrategy) BuildGenerateSeries(start, end time.Time) squirrel.Sqlizer {
	return buildGenerateSeries(s, start, end)
}

func (s MonthStrategy) BuildAggregationQuery(start, end time.Time, roomType *domain.RoomType) squirrel.SelectBuilder {
	return buildAggregationQuery(s, start, end, roomType)
}
