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
	maintenanceModel "arena/internal/domains/maintenance/model"
	"arena/internal/domains/reservation/model"
	"arena/internal/domains/schedule"
	"arena/shared"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	gRepo "arena/shared/repository"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrMaintenanceOverlap is returned when a checked write collides with a
	// maintenance window of the facility.
	ErrMaintenanceOverlap = errors.New("overlaps maintenance window")

	// ErrInvalidTransition is returned when the stored status cannot move to
	// the requested one.
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Reservation interface {
	Get(ctx context.Context, id string) (model.Reservation, error)
	List(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, id string) error
	GetConfirmed(ctx context.Context, facilityID string, window schedule.Interval) ([]model.Reservation, error)
	InsertChecked(ctx context.Context, reservation model.Reservation) error
	UpdateStatusChecked(ctx context.Context, id, status, user string, now time.Time) (model.Reservation, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	facilities  gRepo.Repository[facilityModel.Facility]
	maintenance gRepo.Repository[maintenanceModel.Window]
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository:  gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		facilities:  gRepo.NewRepository[facilityModel.Facility](facilityModel.EntityName, facilityModel.TableName, facilityModel.FieldID, db, otel),
		maintenance: gRepo.NewRepository[maintenanceModel.Window](maintenanceModel.EntityName, maintenanceModel.TableName, maintenanceModel.FieldID, db, otel),
		otel:        otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Reservation, error) {
	return r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (r *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Reservation, error) {
	return r.Repository.GetAll(ctx, params, filter)
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	return r.Repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

// GetConfirmed lists confirmed reservations overlapping window in start order.
// An empty facilityID matches every facility.
func (r *repositoryImpl) GetConfirmed(ctx context.Context, facilityID string, window schedule.Interval) ([]model.Reservation, error) {
	params := gDto.QueryParams{SortBy: model.FieldStartTime}

	return r.Repository.GetAll(ctx, params, confirmedOverlapping(facilityID, window, constant.Empty))
}

// InsertChecked stores a reservation while holding the facility row lock, so
// no other checked write on the facility can interleave between the overlap
// check and the insert. The exclusion constraint on confirmed rows backs this
// up and surfaces as gRepo.ErrConflict.
func (r *repositoryImpl) InsertChecked(ctx context.Context, reservation model.Reservation) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.InsertChecked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.RunInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := r.checkFree(ctx, tx, reservation.FacilityID, reservation.Interval(), constant.Empty); err != nil {
			return err
		}

		return r.InsertTx(ctx, tx, reservation)
	})
}

// UpdateStatusChecked moves a reservation to status. Confirming re-checks the
// facility under its row lock. On ErrInvalidTransition the stored reservation
// is returned alongside the error.
func (r *repositoryImpl) UpdateStatusChecked(ctx context.Context, id, status, user string, now time.Time) (res model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.UpdateStatusChecked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.RunInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := r.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err
		}

		if current.ID == constant.Empty {
			return fmt.Errorf("failed to update reservation %s: %w", id, gRepo.ErrNotFound)
		}

		res = current

		if !model.CanTransition(current.Status, status) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, status)
		}

		if status == model.StatusConfirmed {
			if err := r.checkFree(ctx, tx, current.FacilityID, current.Interval(), current.ID); err != nil {
				return err
			}
		}

		update := map[string]any{
			model.FieldStatus:        status,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := r.UpdateTx(ctx, tx, update, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		res.Status = status
		res.ModifiedAt = now
		res.ModifiedBy = user

		return nil
	})

	return res, err
}

// checkFree locks the facility row and reports whether interval is still free
// of confirmed reservations, other than exclude, and of maintenance windows.
func (r *repositoryImpl) checkFree(ctx context.Context, tx *sqlx.Tx, facilityID string, interval schedule.Interval, exclude string) error {
	found, err := r.facilities.LockTx(ctx, tx, facilityID)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("failed to lock facility %s: %w", facilityID, gRepo.ErrNotFound)
	}

	taken, err := r.ExistTx(ctx, tx, confirmedOverlapping(facilityID, interval, exclude))
	if err != nil {
		return err
	}

	if taken {
		return fmt.Errorf("facility %s is already reserved: %w", facilityID, gRepo.ErrConflict)
	}

	filter := gDto.FilterGroup{}
	filter.And(
		gDto.Filter{Field: maintenanceModel.FieldFacilityID, Value: facilityID, Operator: gDto.FilterOperatorEq, Table: maintenanceModel.TableName},
		shared.FilterOverlap(maintenanceModel.TableName, maintenanceModel.FieldStartTime, maintenanceModel.FieldEndTime, interval.Start, interval.End),
	)

	blocked, err := r.maintenance.ExistTx(ctx, tx, filter)
	if err != nil {
		return err
	}

	if blocked {
		return fmt.Errorf("facility %s is under maintenance: %w", facilityID, ErrMaintenanceOverlap)
	}

	return nil
}

func confirmedOverlapping(facilityID string, window schedule.Interval, exclude string) gDto.FilterGroup {
	filter := gDto.FilterGroup{}
	filter.And(
		gDto.Filter{ArgName: "confirmed", Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		shared.FilterOverlap(model.TableName, model.FieldStartTime, model.FieldEndTime, window.Start, window.End),
	)

	if facilityID != constant.Empty {
		filter.And(gDto.Filter{Field: model.FieldFacilityID, Value: facilityID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if exclude != constant.Empty {
		filter.And(gDto.Filter{ArgName: "exclude_id", Field: model.FieldID, Value: exclude, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	return filter
}
