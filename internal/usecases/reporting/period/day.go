package period

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
)

type DayStrategy struct{}

func (DayStrategy) Type() domain.PeriodType { return domain.PeriodDay }

func (DayStrategy) IntervalUnit() string { return "day" }

func (DayStrategy) Truncate(t time.Time) time.Time { return truncateDay(t) }

func (DayStrategy) next(t time.Time) time.Time { return t.AddDate(0, 0, 1) }

func (DayStrategy) bucketEndOffset() string { return "1 microsecond" }

func (DayStrategy) BucketEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, 1).Add(-time.Microsecond)
}

func (s DayStrategy) GenerateSeries(start, end time.Time) []time.Time {
	return generateSeries(s, start, end)
}

func (s DayStrategy) BuildGenerateSeries(start, end time.Time) squirrel.Sqlizer {
	return buildGenerateSeries(s, start, end)
}

func (s DayStrategy) BuildAggregationQuery(start, end time.Time, roomType *domain.RoomType) squirrel.SelectBuilder {
	return buildAggregationQuery(s, start, end, roomType)
}
