package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franbz1/hotel-san-miguel/infrastructure/repository/mocks"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func roomTypePtr(t domain.RoomType) *domain.RoomType {
	return &t
}

func TestOccupancyService_OccupancyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOccupancyRepo := mocks.NewMockOccupancyRepository(ctrl)
	service := NewOccupancyService(mockOccupancyRepo)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		filter   domain.OccupancyFilter
		setup    func()
		validate func(t *testing.T, report *domain.OccupancyReport, err error)
	}{
		{
			name: "Baldes ausentes no banco são preenchidos com zero",
			filter: domain.OccupancyFilter{
				PeriodType: "day",
				StartDate:  "2024-01-10",
				EndDate:    "2024-01-13",
			},
			setup: func() {
				mockOccupancyRepo.EXPECT().
					Aggregate(ctx, gomock.Any()).
					Return([]domain.PeriodBucket{
						{Periodo: day(10), OccupiedRooms: 1, ReservationCount: 1, RevenueTotal: decimal.NewFromInt(300)},
						{Periodo: day(12), OccupiedRooms: 2, ReservationCount: 2, RevenueTotal: decimal.NewFromInt(500)},
					}, nil)
			},
			validate: func(t *testing.T, report *domain.OccupancyReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.PeriodDay, report.PeriodType)
				require.Len(t, report.Buckets, 4)

				assert.Equal(t, day(10), report.Buckets[0].Periodo)
				assert.Equal(t, 1, report.Buckets[0].OccupiedRooms)
				assert.Equal(t, day(11), report.Buckets[1].Periodo)
				assert.Equal(t, 0, report.Buckets[1].ReservationCount)
				assert.True(t, report.Buckets[1].RevenueTotal.IsZero())
				assert.Equal(t, 2, report.Buckets[2].OccupiedRooms)
				assert.Equal(t, day(13), report.Buckets[3].Periodo)
				assert.Equal(t, 0, report.Buckets[3].OccupiedRooms)
			},
		},
		{
			name: "Tipo de habitação é normalizado e enviado como parâmetro",
			filter: domain.OccupancyFilter{
				PeriodType: "month",
				StartDate:  "2024-01-05",
				EndDate:    "2024-03-20",
				RoomType:   roomTypePtr("suite"),
			},
			setup: func() {
				mockOccupancyRepo.EXPECT().
					Aggregate(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, query squirrel.Sqlizer) ([]domain.PeriodBucket, error) {
						_, args, err := query.ToSql()
						require.NoError(t, err)
						assert.Contains(t, args, "SUITE")
						return nil, nil
					})
			},
			validate: func(t *testing.T, report *domain.OccupancyReport, err error) {
				require.NoError(t, err)
				require.NotNil(t, report.RoomType)
				assert.Equal(t, domain.RoomTypeSuite, *report.RoomType)
				require.Len(t, report.Buckets, 3)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), report.Buckets[0].Periodo)
				assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), report.Buckets[2].Periodo)
			},
		},
		{
			name: "Período desconhecido falha antes de qualquer consulta",
			filter: domain.OccupancyFilter{
				PeriodType: "decade",
				StartDate:  "not-a-date",
				EndDate:    "2024-01-01",
			},
			setup: func() {},
			validate: func(t *testing.T, report *domain.OccupancyReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrUnsupportedPeriodType)
				assert.Contains(t, err.Error(), "decade")
			},
		},
		{
			name: "Token de período em maiúsculas não é aceito",
			filter: domain.OccupancyFilter{
				PeriodType: "MONTH",
				StartDate:  "2024-01-01",
				EndDate:    "2024-01-31",
			},
			setup: func() {},
			validate: func(t *testing.T, report *domain.OccupancyReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrUnsupportedPeriodType)
			},
		},
		{
			name: "Intervalo invertido",
			filter: domain.OccupancyFilter{
				PeriodType: "week",
				StartDate:  "2024-02-01",
				EndDate:    "2024-01-01",
			},
			setup: func() {},
			validate: func(t *testing.T, report *domain.OccupancyReport, err error) {
				assert.ErrorIs(t, err, ErrInvalidRange)
			},
		},
		{
			name: "Tipo de habitação fora da enumeração",
			filter: domain.OccupancyFilter{
				PeriodType: "day",
				StartDate:  "2024-01-01",
				EndDate:    "2024-01-02",
				RoomType:   roomTypePtr("PENTHOUSE'; DROP TABLE reservas; --"),
			},
			setup: func() {},
			validate: func(t *testing.T, report *domain.OccupancyReport, err error) {
				assert.ErrorIs(t, err, ErrInvalidRoomType)
			},
		},
		{
			name: "Falha de persistência",
			filter: domain.OccupancyFilter{
				PeriodType: "year",
				StartDate:  "2023-01-01",
				EndDate:    "2024-12-31",
			},
			setup: func() {
				mockOccupancyRepo.EXPECT().
					Aggregate(ctx, gomock.Any()).
					Return(nil, errors.New("relation does not exist"))
			},
			validate: func(t *testing.T, report *domain.OccupancyReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrAggregationFailed)
				assert.Contains(t, err.Error(), "erro ao gerar relatório de ocupação")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			report, err := service.OccupancyReport(ctx, tt.filter)
			tt.validate(t, report, err)
		})
	}
}

func TestMergeBuckets_RowsInOtherLocation(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := []time.Time{start, start.AddDate(0, 0, 7)}
	rows := []domain.PeriodBucket{
		{Periodo: start.In(time.FixedZone("", 0)), ReservationCount: 3, RevenueTotal: decimal.RequireFromString("10.005")},
	}

	merged := mergeBuckets(series, rows)

	require.Len(t, merged, 2)
	assert.Equal(t, start, merged[0].Periodo)
	assert.Equal(t, 3, merged[0].ReservationCount)
	assert.Equal(t, "10.01", merged[0].RevenueTotal.StringFixed(2))
	assert.Equal(t, 0, merged[1].ReservationCount)
}
