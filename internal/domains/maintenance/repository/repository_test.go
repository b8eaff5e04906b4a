package repository

import (
	"context"
	"testing"
	"time"

	"arena/infras/otel/mocks"
	"arena/infras/postgres"
	"arena/internal/domains/maintenance/model"
	gRepo "arena/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	facilityID    = "3f0c7c1e-6a4b-4d55-9a61-0b5f1d2a1002"
	maintenanceID = "0b6d1f6e-27c4-4f3a-8d0e-5a9c2b7e4d21"

	lockFacility    = `SELECT id FROM facilities WHERE id = \$1 FOR UPDATE`
	existsConfirmed = `SELECT EXISTS\(SELECT 1 FROM reservations\s+WHERE .+reservations\.status = .+\)`
	insertWindow    = `INSERT INTO maintenance_windows \(`
	lockWindow      = `SELECT .+ FROM maintenance_windows .+ FOR UPDATE OF maintenance_windows`
	truncateWindow  = `UPDATE maintenance_windows SET end_time = \$1, modified_at = \$2, modified_by = \$3\s+WHERE`
)

var (
	start = time.Date(2030, 1, 7, 8, 0, 0, 0, time.UTC)
	end   = start.Add(4 * time.Hour)
)

func newRepository(t *testing.T) (*repositoryImpl, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "postgres")
	repo, ok := New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()).(*repositoryImpl)
	require.True(t, ok)

	return repo, mock
}

func storedWindow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "facility_id", "start_time", "end_time", "description"}).AddRow(maintenanceID, facilityID, start, end, "Resurfacing")
}

func TestRepository_InsertChecked(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "no confirmed booking in the way",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockFacility).WithArgs(facilityID).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(facilityID))
				mock.ExpectPrepare(existsConfirmed).ExpectQuery().WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(insertWindow).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "confirmed booking overlaps",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockFacility).WithArgs(facilityID).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(facilityID))
				mock.ExpectPrepare(existsConfirmed).ExpectQuery().WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: gRepo.ErrConflict,
		},
		{
			name: "missing facility",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockFacility).WithArgs(facilityID).WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: gRepo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setup(mock)

			err := repo.InsertChecked(context.Background(), model.Window{
				ID:          maintenanceID,
				FacilityID:  facilityID,
				StartTime:   start,
				EndTime:     end,
				Description: "Resurfacing",
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Finish(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		rows    func() *sqlmock.Rows
		update  bool
		wantErr error
		wantEnd time.Time
	}{
		{
			name:    "running window ends now",
			now:     start.Add(time.Hour),
			rows:    storedWindow,
			update:  true,
			wantEnd: start.Add(time.Hour),
		},
		{
			name:    "finishing at the start instant would empty the window",
			now:     start,
			rows:    storedWindow,
			wantErr: ErrJustStarted,
			wantEnd: end,
		},
		{
			name:    "scheduled window",
			now:     start.Add(-time.Minute),
			rows:    storedWindow,
			wantErr: ErrNotActive,
			wantEnd: end,
		},
		{
			name:    "already over",
			now:     end,
			rows:    storedWindow,
			wantErr: ErrNotActive,
			wantEnd: end,
		},
		{
			name: "missing window",
			now:  start,
			rows: func() *sqlmock.Rows {
				return sqlmock.NewRows([]string{"id"})
			},
			wantErr: gRepo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)

			mock.ExpectBegin()
			mock.ExpectPrepare(lockWindow).ExpectQuery().WillReturnRows(tt.rows())

			if tt.update {
				mock.ExpectExec(truncateWindow).
					WithArgs(tt.now, tt.now, "admin-1", maintenanceID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			got, err := repo.Finish(context.Background(), maintenanceID, "admin-1", tt.now)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "admin-1", got.ModifiedBy)
			}

			assert.Equal(t, tt.wantEnd, got.EndTime)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
