package repository

import (
	"context"

	"github.com/fleetops/shiplog/pkg/mysqldb"
	"gorm.io/gorm"
)

type IRepository interface {
	ErrorAndWarning() IErrorAndWarningRepository
	IngestLog() IIngestLogRepository
	StartDBTransaction(ctx context.Context) (*gorm.DB, error)
	CommitDBTransaction(tx *gorm.DB) error
}

type repository struct {
	mysqlInstance   mysqldb.IMysqlInstance
	errorAndWarning IErrorAndWarningRepository
	ingestLog       IIngestLogRepository
}

func NewRepository(mi mysqldb.IMysqlInstance, ew IErrorAndWarningRepository, il IIngestLogRepository) IRepository {
	return &repository{
		mysqlInstance:   mi,
		errorAndWarning: ew,
		ingestLog:       il,
	}
}

func (r *repository) StartDBTransaction(ctx context.Context) (*gorm.DB, error) {
	tx := r.mysqlInstance.
		Database().
		WithContext(ctx).Begin()

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Error; err != nil {
		return nil, err
	}

	return tx, nil
}

func (r *repository) CommitDBTransaction(tx *gorm.DB) error {
	return tx.Commit().Error
}

func (r *repository) ErrorAndWarning() IErrorAndWarningRepository {
	return r.errorAndWarning
}

func (r *repository) IngestLog() IIngestLogRepository {
	return r.ingestLog
}
