package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fleetops/shiplog/internal/model"
	"github.com/fleetops/shiplog/pkg/mysqldb"
)

type IIngestLogRepository interface {
	CreateIngestLog(ctx context.Context, tx *gorm.DB, ingestLog *model.IngestLog) error
}

type IngestLogRepository struct {
	mysqlInstance mysqldb.IMysqlInstance
}

func NewIngestLogRepository(mysqlInstance mysqldb.IMysqlInstance) *IngestLogRepository {
	return &IngestLogRepository{
		mysqlInstance: mysqlInstance,
	}
}

func (i *IngestLogRepository) CreateIngestLog(ctx context.Context, tx *gorm.DB, ingestLog *model.IngestLog) error {
	return tx.
		WithContext(ctx).
		Create(ingestLog).
		Error
}
