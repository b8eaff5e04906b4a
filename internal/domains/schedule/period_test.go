package schedule_test

import (
	"testing"
	"time"

	"arena/internal/domains/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeSpec_Resolve(t *testing.T) {
	utc := time.UTC

	tests := []struct {
		name      string
		spec      schedule.RangeSpec
		wantStart time.Time
		wantEnd   time.Time
		wantLabel string
	}{
		{
			name:      "day",
			spec:      schedule.RangeSpec{Period: schedule.PeriodDay, Date: "2025-06-02"},
			wantStart: time.Date(2025, 6, 2, 0, 0, 0, 0, utc),
			wantEnd:   time.Date(2025, 6, 3, 0, 0, 0, 0, utc),
			wantLabel: "2025-06-02",
		},
		{
			name:      "month",
			spec:      schedule.RangeSpec{Period: schedule.PeriodMonth, Month: "2025-02"},
			wantStart: time.Date(2025, 2, 1, 0, 0, 0, 0, utc),
			wantEnd:   time.Date(2025, 3, 1, 0, 0, 0, 0, utc),
			wantLabel: "2025-02",
		},
		{
			name:      "year",
			spec:      schedule.RangeSpec{Period: schedule.PeriodYear, Year: "2025"},
			wantStart: time.Date(2025, 1, 1, 0, 0, 0, 0, utc),
			wantEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, utc),
			wantLabel: "2025",
		},
		{
			name:      "inclusive range",
			spec:      schedule.RangeSpec{Period: schedule.PeriodRange, From: "2025-06-01", To: "2025-06-01"},
			wantStart: time.Date(2025, 6, 1, 0, 0, 0, 0, utc),
			wantEnd:   time.Date(2025, 6, 2, 0, 0, 0, 0, utc),
			wantLabel: "2025-06-01..2025-06-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Resolve(utc)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, tt.wantEnd, got.End)
			assert.Equal(t, tt.wantLabel, tt.spec.Label())
		})
	}
}

func TestRangeSpec_ResolveErrors(t *testing.T) {
	tests := []schedule.RangeSpec{
		{Period: "week"},
		{Period: schedule.PeriodDay},
		{Period: schedule.PeriodMonth, Month: "06-2025"},
		{Period: schedule.PeriodRange, From: "2025-06-10", To: "2025-06-01"},
		{Period: schedule.PeriodRange, From: "2025-06-10"},
	}

	for _, spec := range tests {
		_, err := spec.Resolve(time.UTC)

		assert.ErrorIs(t, err, schedule.ErrInvalidPeriod, "%+v", spec)
	}
}
