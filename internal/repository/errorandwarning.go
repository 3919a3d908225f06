package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fleetops/shiplog/internal/model"
	"github.com/fleetops/shiplog/pkg/mysqldb"
)

type IErrorAndWarningRepository interface {
	CreateErrorAndWarning(ctx context.Context, tx *gorm.DB, record *model.ErrorAndWarning) error
	GetLatestErrorAndWarnings(ctx context.Context, limit int) ([]model.ErrorAndWarning, error)
}

type ErrorAndWarningRepository struct {
	mysqlInstance mysqldb.IMysqlInstance
}

func NewErrorAndWarningRepository(mysqlInstance mysqldb.IMysqlInstance) *ErrorAndWarningRepository {
	return &ErrorAndWarningRepository{
		mysqlInstance: mysqlInstance,
	}
}

func (e *ErrorAndWarningRepository) CreateErrorAndWarning(ctx context.Context, tx *gorm.DB, record *model.ErrorAndWarning) error {
	return tx.
		WithContext(ctx).
		Create(record).
		Error
}

func (e *ErrorAndWarningRepository) GetLatestErrorAndWarnings(ctx context.Context, limit int) ([]model.ErrorAndWarning, error) {
	var entries []model.ErrorAndWarning

	err := e.mysqlInstance.
		Database().
		WithContext(ctx).
		Order("CreatedDateTime DESC").
		Limit(limit).
		Find(&entries).
		Error

	if err != nil {
		return nil, err
	}
	return entries, nil
}
