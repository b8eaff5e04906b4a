package availability_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arena/infras/otel/mocks"
	"arena/internal/domains/availability/model"
	serviceMocks "arena/internal/domains/availability/service/mocks"
	"arena/internal/handlers/availability"
	"arena/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const facilityID = "8f14e45f-ceea-467a-9f47-1e5d2a7d3b10"

func TestHandler_GetAvailability(t *testing.T) {
	grid := []model.FacilitySlotReport{{
		FacilityID: facilityID,
		Name:       "Covered Court",
		Date:       "2025-06-06",
		Opening:    "06:00",
		Closing:    "22:00",
		Slots:      []model.SlotReport{{Hour: 6, Start: "06:00", End: "07:00", Available: true}},
	}}

	tests := []struct {
		name      string
		target    string
		setupMock func(svc *serviceMocks.MockAvailability)
		wantCode  int
	}{
		{
			name:   "one facility",
			target: "/availability/?date=2025-06-06&facility_id=" + facilityID,
			setupMock: func(svc *serviceMocks.MockAvailability) {
				svc.EXPECT().Compute(gomock.Any(), facilityID, "2025-06-06").Return(grid, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "every active facility",
			target: "/availability/?date=2025-06-06",
			setupMock: func(svc *serviceMocks.MockAvailability) {
				svc.EXPECT().Compute(gomock.Any(), "", "2025-06-06").Return(grid, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "date is required",
			target:    "/availability/",
			setupMock: func(*serviceMocks.MockAvailability) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "unknown facility",
			target: "/availability/?date=2025-06-06&facility_id=" + facilityID,
			setupMock: func(svc *serviceMocks.MockAvailability) {
				svc.EXPECT().Compute(gomock.Any(), facilityID, "2025-06-06").Return(nil, failure.NotFound("facility not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "malformed facility id",
			target:    "/availability/?date=2025-06-06&facility_id=nope",
			setupMock: func(*serviceMocks.MockAvailability) {},
			wantCode:  http.StatusNotFound,
		},
		{
			name:   "storage down",
			target: "/availability/?date=2025-06-06",
			setupMock: func(svc *serviceMocks.MockAvailability) {
				svc.EXPECT().Compute(gomock.Any(), "", "2025-06-06").Return(nil, failure.Transient(assert.AnError))
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := serviceMocks.NewMockAvailability(gomock.NewController(t))
			tt.setupMock(svc)

			handler := availability.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantCode != http.StatusOK {
				return
			}

			var body struct {
				Data []model.FacilitySlotReport `json:"data"`
			}

			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, grid, body.Data)
		})
	}
}
