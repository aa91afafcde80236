package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "data válida", input: "2024-01-15", want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "ano bissexto", input: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "29 de fevereiro em ano comum", input: "2023-02-29", wantErr: true},
		{name: "mês inexistente", input: "2024-13-01", wantErr: true},
		{name: "formato errado", input: "15/01/2024", wantErr: true},
		{name: "vazio", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestEndOfDay(t *testing.T) {
	date := time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), StartOfDay(date))
	assert.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, 999000000, time.UTC), EndOfDay(date))
}

func TestFirstDayOfMonth_Rollover(t *testing.T) {
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), FirstDayOfMonth(2024, 13))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), FirstDayOfMonth(2024, 3))
}

func TestAveragePerItem(t *testing.T) {
	assert.True(t, decimal.RequireFromString("133.33").Equal(AveragePerItem(decimal.NewFromInt(400), 3)))
	assert.True(t, decimal.RequireFromString("0.01").Equal(AveragePerItem(decimal.RequireFromString("0.025"), 2)))
	assert.True(t, decimal.RequireFromString("66.67").Equal(AveragePerItem(decimal.NewFromInt(200), 3)))
	assert.True(t, decimal.Zero.Equal(AveragePerItem(decimal.NewFromInt(400), 0)))
	assert.True(t, decimal.Zero.Equal(AveragePerItem(decimal.Zero, 0)))
}
