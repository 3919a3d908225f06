package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fleetops/shiplog/internal/dto/request"
	"github.com/fleetops/shiplog/internal/model"
	"github.com/fleetops/shiplog/internal/repository"
	"github.com/fleetops/shiplog/pkg/validation"
)

// timestampLayouts are tried in order when parsing the message "time" property.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type IIngestService interface {
	ProcessQueueMessage(ctx context.Context, properties map[string]string)
}

type ingestService struct {
	logger     *logrus.Logger
	validator  validation.IValidator
	repository repository.IRepository
}

func NewIngestService(l *logrus.Logger, v validation.IValidator, r repository.IRepository) IIngestService {
	return &ingestService{
		logger:     l,
		validator:  v,
		repository: r,
	}
}

// ProcessQueueMessage converts one queue message into one ErrorAndWarning row.
// Failures are logged and swallowed so the caller always observes a normal
// return; redelivery is left entirely to the transport.
func (i *ingestService) ProcessQueueMessage(ctx context.Context, properties map[string]string) {
	if err := i.processQueueMessage(ctx, properties); err != nil {
		i.logger.Errorf("Exception in ProcessQueueMessage: %v", err)
	}
}

func (i *ingestService) processQueueMessage(ctx context.Context, properties map[string]string) error {
	msg := request.NewQueueMessageRequest(properties)
	if errs := i.validator.Validate(msg); len(errs) > 0 {
		return fmt.Errorf("missing message properties: %v", errs)
	}

	i.logger.Infof("Processing message: %s Ship: %s", msg.ExceptionMessage, msg.Ship)

	createdAt, err := parseMessageTime(msg.Time)
	if err != nil {
		return err
	}

	record := &model.ErrorAndWarning{
		CreatedDateTime: createdAt,
		ShipName:        msg.Ship,
		Message:         msg.ExceptionMessage,
	}

	rawProperties, err := json.Marshal(properties)
	if err != nil {
		return fmt.Errorf("marshal message properties: %w", err)
	}

	ingestLog := &model.IngestLog{
		UUID:       uuid.New().String(),
		ShipName:   msg.Ship,
		Properties: rawProperties,
		CreateDate: time.Now().UTC(),
	}

	tx, err := i.repository.StartDBTransaction(ctx)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}

	if err = i.repository.ErrorAndWarning().CreateErrorAndWarning(ctx, tx, record); err != nil {
		tx.Rollback()

		return fmt.Errorf("create error and warning entry: %w", err)
	}

	if err = i.repository.IngestLog().CreateIngestLog(ctx, tx, ingestLog); err != nil {
		tx.Rollback()

		return fmt.Errorf("create ingest log entry: %w", err)
	}

	if err = i.repository.CommitDBTransaction(tx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func parseMessageTime(value string) (time.Time, error) {
	var lastErr error

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, fmt.Errorf("parse message time %q: %w", value, lastErr)
}
