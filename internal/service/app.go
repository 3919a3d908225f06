package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fleetops/shiplog/internal/dto/resource"
	"github.com/fleetops/shiplog/internal/repository"
)

const defaultListEntriesLimit = 20

type IAppService interface {
	Ingest() IIngestService
	ListEntries(ctx context.Context, limit int) (resource.ListEntriesResource, error)
}

type appService struct {
	logger        *logrus.Logger
	repository    repository.IRepository
	ingestService IIngestService
}

func NewAppService(l *logrus.Logger, r repository.IRepository, is IIngestService) IAppService {
	return &appService{
		logger:        l,
		repository:    r,
		ingestService: is,
	}
}

func (a *appService) Ingest() IIngestService {
	return a.ingestService
}

func (a *appService) ListEntries(ctx context.Context, limit int) (resource.ListEntriesResource, error) {
	if limit <= 0 {
		limit = defaultListEntriesLimit
	}

	entries, err := a.repository.ErrorAndWarning().GetLatestErrorAndWarnings(ctx, limit)
	if err != nil {
		a.logger.WithFields(logrus.Fields{
			"error": err,
		}).Error("failed to list error and warning entries")

		return resource.ListEntriesResource{}, err
	}

	res := resource.ListEntriesResource{
		Entries: make([]resource.ErrorAndWarningResource, 0, len(entries)),
	}
	for _, e := range entries {
		res.Entries = append(res.Entries, resource.ErrorAndWarningResource{
			ID:              e.ID,
			CreatedDateTime: e.CreatedDateTime,
			ShipName:        e.ShipName,
			Message:         e.Message,
		})
	}

	return res, nil
}
