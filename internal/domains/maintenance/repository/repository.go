package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arena/infras/otel"
	"arena/infras/postgres"
	facilityModel "arena/internal/domains/facility/model"
	"arena/internal/domains/maintenance/model"
	reservationModel "arena/internal/domains/reservation/model"
	"arena/internal/domains/schedule"
	"arena/shared"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	gRepo "arena/shared/repository"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrNotActive is returned when finishing a window that is not running.
	ErrNotActive = errors.New("maintenance window is not active")

	// ErrJustStarted is returned when finishing a window at its start instant,
	// which would leave it empty.
	ErrJustStarted = errors.New("maintenance window has just started")
)

type Maintenance interface {
	Get(ctx context.Context, id string) (model.Window, error)
	List(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Window, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetActive(ctx context.Context, facilityID string, window schedule.Interval) ([]model.Window, error)
	InsertChecked(ctx context.Context, window model.Window) error
	Finish(ctx context.Context, id, user string, now time.Time) (model.Window, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Window]
	facilities   gRepo.Repository[facilityModel.Facility]
	reservations gRepo.Repository[reservationModel.Reservation]
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Maintenance {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Window](model.EntityName, model.TableName, model.FieldID, db, otel),
		facilities:   gRepo.NewRepository[facilityModel.Facility](facilityModel.EntityName, facilityModel.TableName, facilityModel.FieldID, db, otel),
		reservations: gRepo.NewRepository[reservationModel.Reservation](reservationModel.EntityName, reservationModel.TableName, reservationModel.FieldID, db, otel),
		otel:         otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Window, error) {
	return r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (r *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Window, error) {
	return r.Repository.GetAll(ctx, params, filter)
}

// GetActive lists the windows that still hold the facility somewhere inside
// window. A window finished early ends at its finishing instant, so it only
// matches up to then. An empty facilityID matches every facility.
func (r *repositoryImpl) GetActive(ctx context.Context, facilityID string, window schedule.Interval) ([]model.Window, error) {
	filter := shared.FilterOverlap(model.TableName, model.FieldStartTime, model.FieldEndTime, window.Start, window.End)

	if facilityID != constant.Empty {
		filter.And(gDto.Filter{Field: model.FieldFacilityID, Value: facilityID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return r.Repository.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldStartTime}, filter)
}

// InsertChecked stores a window unless a confirmed reservation of the facility
// overlaps it. The check and the insert run under the facility row lock that
// reservation writes take too.
func (r *repositoryImpl) InsertChecked(ctx context.Context, window model.Window) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".maintenance.InsertChecked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.RunInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		found, err := r.facilities.LockTx(ctx, tx, window.FacilityID)
		if err != nil {
			return err
		}

		if !found {
			return fmt.Errorf("failed to lock facility %s: %w", window.FacilityID, gRepo.ErrNotFound)
		}

		filter := gDto.FilterGroup{}
		filter.And(
			gDto.Filter{Field: reservationModel.FieldFacilityID, Value: window.FacilityID, Operator: gDto.FilterOperatorEq, Table: reservationModel.TableName},
			gDto.Filter{Field: reservationModel.FieldStatus, Value: reservationModel.StatusConfirmed, Operator: gDto.FilterOperatorEq, Table: reservationModel.TableName},
			shared.FilterOverlap(reservationModel.TableName, reservationModel.FieldStartTime, reservationModel.FieldEndTime, window.StartTime, window.EndTime),
		)

		taken, err := r.reservations.ExistTx(ctx, tx, filter)
		if err != nil {
			return err
		}

		if taken {
			return fmt.Errorf("facility %s has confirmed reservations: %w", window.FacilityID, gRepo.ErrConflict)
		}

		return r.InsertTx(ctx, tx, window)
	})
}

// Finish truncates a running window to now. ErrNotActive comes back with the
// stored window so callers can report its state.
func (r *repositoryImpl) Finish(ctx context.Context, id, user string, now time.Time) (res model.Window, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".maintenance.Finish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.RunInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := r.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err
		}

		if current.ID == constant.Empty {
			return fmt.Errorf("failed to finish maintenance %s: %w", id, gRepo.ErrNotFound)
		}

		res = current

		if current.State(now) != model.StateActive {
			return fmt.Errorf("failed to finish maintenance %s: %w", id, ErrNotActive)
		}

		if !now.After(current.StartTime) {
			return fmt.Errorf("failed to finish maintenance %s: %w", id, ErrJustStarted)
		}

		update := map[string]any{
			model.FieldEndTime:       now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := r.UpdateTx(ctx, tx, update, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		res.EndTime = now
		res.ModifiedAt = now
		res.ModifiedBy = user

		return nil
	})

	return res, err
}
