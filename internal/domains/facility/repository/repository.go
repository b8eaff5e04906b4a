package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arena/infras/otel"
	"arena/infras/postgres"
	"arena/internal/domains/facility/model"
	"arena/shared"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	gRepo "arena/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Facility interface {
	Get(ctx context.Context, id string) (model.Facility, error)
	List(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Facility, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetHours(ctx context.Context, facilityID string) ([]model.OperatingHours, error)
	ReplaceHours(ctx context.Context, facilityID string, rows []model.OperatingHours) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Facility]
	hours gRepo.Repository[model.OperatingHours]
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Facility {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Facility](model.EntityName, model.TableName, model.FieldID, db, otel),
		hours:      gRepo.NewRepository[model.OperatingHours](model.HoursEntityName, model.HoursTableName, model.HoursFieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Facility, error) {
	return r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (r *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Facility, error) {
	return r.Repository.GetAll(ctx, params, filter)
}

func (r *repositoryImpl) GetHours(ctx context.Context, facilityID string) ([]model.OperatingHours, error) {
	params := gDto.QueryParams{SortBy: model.HoursFieldDayOfWeek}

	return r.hours.GetAll(ctx, params, shared.FilterByID(facilityID, model.HoursFieldFacilityID, model.HoursTableName))
}

// ReplaceHours swaps every override row of a facility in one transaction while
// holding the facility row lock.
func (r *repositoryImpl) ReplaceHours(ctx context.Context, facilityID string, rows []model.OperatingHours) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".facility.ReplaceHours")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.RunInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		found, err := r.LockTx(ctx, tx, facilityID)
		if err != nil {
			return err
		}

		if !found {
			return fmt.Errorf("failed to replace hours of facility %s: %w", facilityID, gRepo.ErrNotFound)
		}

		err = r.hours.DeleteTx(ctx, tx, shared.FilterByID(facilityID, model.HoursFieldFacilityID, model.HoursTableName))
		if err != nil {
			return err
		}

		return r.hours.InsertBulkTx(ctx, tx, rows)
	})
}
