package period

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
)

type YearStrategy struct{}

func (YearStrategy) Type() domain.PeriodType { return domain.PeriodYear }

func (YearStrategy) IntervalUnit() string { return "year" }

func (YearStrategy) Truncate(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

func (YearStrategy) next(t time.Time) time.Time { return t.AddDate(1, 0, 0) }

func (YearStrategy) bucketEndOffset() string { return "1 day" }

// BucketEnd é 31 de dezembro do ano do balde
func (YearStrategy) BucketEnd(start time.Time) time.Time {
	return start.AddDate(1, 0, -1)
}

func (s YearStrategy) GenerateSeries(start, end time.Time) []time.Time {
	return generateSeries(s, start, end)
}

func (s YearStrategy) BuildGenerateSeries(start, end time.Time) squirrel.Sqlizer {
	return buildGenerateSeries(s, start, end)
}

func (s YearStrategy) BuildAggregationQuery(start, end time.Time, roomType *domain.RoomType) squirrel.SelectBuilder {
	return buildAggregationQuery(s, start, end, roomType)
}
