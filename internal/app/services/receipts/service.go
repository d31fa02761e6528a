// Package receipts orchestrates receipt intake and point lookups around the
// pure domain functions.
package receipts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/receiptworks/points-service/internal/app/domain/receipt"
	"github.com/receiptworks/points-service/internal/app/metrics"
	"github.com/receiptworks/points-service/internal/app/storage"
	"github.com/receiptworks/points-service/pkg/logger"
)

// ErrInvalidReceipt marks a submission rejected by the validation gate.
var ErrInvalidReceipt = errors.New("the receipt is invalid")

// Service accepts receipts and computes their point totals.
type Service struct {
	store storage.ReceiptStore
	log   *logger.Logger
}

// New constructs a receipts service.
func New(store storage.ReceiptStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("receipts")
	}
	return &Service{store: store, log: log}
}

// Process validates the submitted receipt, assigns it an opaque ID, and
// stores it. Returns ErrInvalidReceipt when the validation gate rejects it.
func (s *Service) Process(ctx context.Context, rcpt receipt.Receipt) (string, error) {
	if !receipt.Validate(rcpt) {
		metrics.RecordReceiptProcessed("rejected")
		s.log.WithField("retailer", rcpt.Retailer).Warn("rejected invalid receipt")
		return "", ErrInvalidReceipt
	}

	id := uuid.NewString()
	if err := s.store.SaveReceipt(ctx, id, rcpt); err != nil {
		metrics.RecordReceiptProcessed("error")
		return "", fmt.Errorf("store receipt: %w", err)
	}

	metrics.RecordReceiptProcessed("accepted")
	s.log.Debugf("stored receipt %s with %d items", id, len(rcpt.Items))
	return id, nil
}

// Points recomputes the score for a stored receipt. The score is a pure
// function of the receipt and is never cached. Unknown IDs surface
// storage.ErrNotFound.
func (s *Service) Points(ctx context.Context, id string) (int, error) {
	rcpt, err := s.store.GetReceipt(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			metrics.RecordPointsQuery("miss")
		}
		return 0, err
	}

	metrics.RecordPointsQuery("hit")
	return receipt.Points(rcpt), nil
}
