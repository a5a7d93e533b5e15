package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"airtech/infras/otel"
	"airtech/infras/postgres"
	bookingModel "airtech/internal/domains/booking/model"
	"airtech/internal/domains/flight/model"
	"airtech/shared"
	"airtech/shared/constant"
	gDto "airtech/shared/dto"
	"airtech/shared/logger"
	gRepo "airtech/shared/repository"
)

type Flight interface {
	Insert(ctx context.Context, model model.Flight) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Flight, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Flight, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteWithBookings(ctx context.Context, flightID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Flight]
	bookings gRepo.Repository[bookingModel.Booking]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Flight {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Flight](model.EntityName, model.TableName, model.FieldID, db, otel),
		bookings:   gRepo.NewRepository[bookingModel.Booking](bookingModel.EntityName, bookingModel.TableName, bookingModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// DeleteWithBookings removes a flight together with its bookings in a single
// transaction, so no moment exists where a booking references a missing
// flight.
func (repo *repositoryImpl) DeleteWithBookings(ctx context.Context, flightID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".flight.DeleteWithBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.Beginx()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (flight): %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	bookingFilter := shared.FilterByID(flightID, bookingModel.FieldFlightID, bookingModel.TableName)
	if err = repo.bookings.DeleteTx(ctx, tx, bookingFilter); err != nil {
		return fmt.Errorf("failed to cascade delete bookings (flight): %w", err)
	}

	flightFilter := shared.FilterByID(flightID, model.FieldID, model.TableName)
	if err = repo.Repository.DeleteTx(ctx, tx, flightFilter); err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (flight): %w", err)
	}

	return nil
}
