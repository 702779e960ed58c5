package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	"github.com/gabrielgilbord/Frantana-Booking/infras/postgres"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/model"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	gRepo "github.com/gabrielgilbord/Frantana-Booking/shared/repository"
)

type Availability interface {
	Upsert(ctx context.Context, model model.Availability, conflictColumns, updateColumns []string) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Availability, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Availability, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Availability]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Availability](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
