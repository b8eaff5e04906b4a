package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"arena/infras/otel/mocks"
	s3Mocks "arena/infras/s3/mocks"
	facilityModel "arena/internal/domains/facility/model"
	facilityMocks "arena/internal/domains/facility/service/mocks"
	"arena/internal/domains/report/model/dto"
	"arena/internal/domains/report/service"
	reservationMocks "arena/internal/domains/reservation/mocks"
	reservationModel "arena/internal/domains/reservation/model"
	"arena/internal/domains/schedule"
	"arena/shared/failure"
	"arena/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pitch = facilityModel.Facility{ID: "f-1", Name: "Synthetic Pitch", Active: true}

type fixture struct {
	svc          service.Report
	facility     *facilityMocks.MockFacility
	reservations *reservationMocks.MockReservation
	storage      *s3Mocks.MockS3
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		facility:     facilityMocks.NewMockFacility(ctrl),
		reservations: reservationMocks.NewMockReservation(ctrl),
		storage:      s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.facility, f.reservations, f.storage, mocks.NewOtel())

	return f
}

func (f fixture) expectDay(reservations []reservationModel.Reservation) {
	f.facility.EXPECT().Active(gomock.Any()).Return([]facilityModel.Facility{pitch}, nil)
	f.facility.EXPECT().Policy(gomock.Any(), pitch.ID).Return(schedule.Policy{}, nil)
	f.reservations.EXPECT().GetConfirmed(gomock.Any(), "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, span schedule.Interval) ([]reservationModel.Reservation, error) {
			if span.Start.Day() != 8 || span.Duration() != 24*time.Hour {
				return nil, errors.New("unexpected span")
			}

			return reservations, nil
		})
}

func TestReportService_Compute(t *testing.T) {
	f := newFixture(t)

	// The first reservation started the evening before and only overlaps the day.
	f.expectDay([]reservationModel.Reservation{
		{FacilityID: pitch.ID, StartTime: timezone.Date(2025, time.June, 7, 23, 0), EndTime: timezone.Date(2025, time.June, 8, 1, 0), TotalPrice: 200},
		{FacilityID: pitch.ID, StartTime: timezone.Date(2025, time.June, 8, 9, 0), EndTime: timezone.Date(2025, time.June, 8, 11, 0), TotalPrice: 200},
		{FacilityID: pitch.ID, StartTime: timezone.Date(2025, time.June, 8, 15, 0), EndTime: timezone.Date(2025, time.June, 8, 16, 0), TotalPrice: 100},
	})

	got, err := f.svc.Compute(context.Background(), schedule.RangeSpec{Period: schedule.PeriodDay, Date: "2025-06-08"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-08", got.From)
	assert.Equal(t, "2025-06-08", got.To)
	assert.Equal(t, "2025-06-08", got.Monthly.Label)
	assert.Equal(t, 2, got.Monthly.TotalReservations)
	assert.Equal(t, 300.0, got.Monthly.TotalRevenue)
	assert.Equal(t, "Synthetic Pitch", got.Monthly.TopFacility)
	// Sunday 08:00-20:00 has 12 slots.
	assert.Equal(t, 16.67, got.Monthly.OccupancyPercent)
	require.Len(t, got.PerFacility, 1)
	assert.Equal(t, 3.0, got.PerFacility[0].OccupiedHours)
}

func TestReportService_ComputeRejectsBadRange(t *testing.T) {
	tests := []struct {
		name string
		spec schedule.RangeSpec
	}{
		{name: "unknown period", spec: schedule.RangeSpec{Period: "week"}},
		{name: "missing month", spec: schedule.RangeSpec{Period: schedule.PeriodMonth}},
		{name: "reversed range", spec: schedule.RangeSpec{Period: schedule.PeriodRange, From: "2025-06-10", To: "2025-06-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.Compute(context.Background(), tt.spec)
			assert.Equal(t, failure.KindBadRequest, failure.GetKind(err))
		})
	}
}

func TestReportService_Export(t *testing.T) {
	f := newFixture(t)
	f.expectDay(nil)

	f.storage.EXPECT().
		UploadFileBytes(gomock.Any(), "reports", gomock.Any(), "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, dir, name, _ string, data []byte) (string, error) {
			assert.Regexp(t, `^day-2025-06-08-\d{8}T\d{6}\.json$`, name)

			var snapshot dto.ReportResponse
			require.NoError(t, json.Unmarshal(data, &snapshot))
			assert.Equal(t, "2025-06-08", snapshot.From)

			return "https://files.example.com/" + dir + "/" + name, nil
		})

	got, err := f.svc.Export(context.Background(), schedule.RangeSpec{Period: schedule.PeriodDay, Date: "2025-06-08"})
	require.NoError(t, err)
	assert.Contains(t, got.URL, "https://files.example.com/reports/day-2025-06-08-")
}

func TestReportService_ExportStorageDown(t *testing.T) {
	f := newFixture(t)
	f.expectDay(nil)

	f.storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("connection refused"))

	_, err := f.svc.Export(context.Background(), schedule.RangeSpec{Period: schedule.PeriodDay, Date: "2025-06-08"})
	assert.Equal(t, failure.KindTransient, failure.GetKind(err))
	assert.Equal(t, 503, failure.GetCode(err))
}
