package period

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
)

// WeekStrategy agrupa por semanas iniciadas na segunda-feira, como date_trunc('week') do PostgreSQL
type WeekStrategy struct{}

func (WeekStrategy) Type() domain.PeriodType { return domain.PeriodWeek }

func (WeekStrategy) IntervalUnit() string { return "week" }

func (WeekStrategy) Truncate(t time.Time) time.Time {
	day := truncateDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func (WeekStrategy) next(t time.Time) time.Time { return t.AddDate(0, 0, 7) }

func (WeekStrategy) bucketEndOffset() string { return "1 day" }

// BucketEnd termina no sexto dia após o início (granularidade de dia)
func (WeekStrategy) BucketEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, 6)
}

func (s WeekStrategy) GenerateSeries(start, end time.Time) []time.Time {
	return generateSeries(s, start, end)
}

func (s WeekStrategy) BuildGenerateSeries(start, end time.Time) squirrel.Sqlizer {
	return buildGenerateSeries(s, start, end)
}

func (s WeekStrategy) BuildAggregationQuery(start, end time.Time, roomType *domain.RoomType) squirrel.SelectBuilder {
	return buildAggregationQuery(s, start, end, roomType)
}
