// Package storage declares the persistence surface of the points service.
package storage

import (
	"context"
	"errors"

	"github.com/receiptworks/points-service/internal/app/domain/receipt"
)

// ErrNotFound is returned when no receipt exists for the requested ID.
var ErrNotFound = errors.New("receipt not found")

// ReceiptStore persists accepted receipts keyed by their assigned ID.
// Inserts are atomic and insert-only; stored receipts are never mutated.
type ReceiptStore interface {
	SaveReceipt(ctx context.Context, id string, rcpt receipt.Receipt) error
	GetReceipt(ctx context.Context, id string) (receipt.Receipt, error)
}
