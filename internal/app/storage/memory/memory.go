// Package memory provides the in-memory receipt store. Receipts live for the
// process lifetime; there is no expiry or teardown.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/receiptworks/points-service/internal/app/domain/receipt"
	"github.com/receiptworks/points-service/internal/app/storage"
)

// Store is an in-memory implementation of storage.ReceiptStore. It is safe
// for concurrent use.
type Store struct {
	mu       sync.RWMutex
	receipts map[string]receipt.Receipt
}

var _ storage.ReceiptStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{receipts: make(map[string]receipt.Receipt)}
}

// SaveReceipt inserts a receipt under the given ID. Inserting an existing ID
// is an error; stored receipts are immutable.
func (s *Store) SaveReceipt(_ context.Context, id string, rcpt receipt.Receipt) error {
	if id == "" {
		return fmt.Errorf("receipt id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.receipts[id]; exists {
		return fmt.Errorf("receipt %s already exists", id)
	}

	s.receipts[id] = cloneReceipt(rcpt)
	return nil
}

// GetReceipt returns a copy of the receipt stored under id, or
// storage.ErrNotFound.
func (s *Store) GetReceipt(_ context.Context, id string) (receipt.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rcpt, ok := s.receipts[id]
	if !ok {
		return receipt.Receipt{}, fmt.Errorf("receipt %s: %w", id, storage.ErrNotFound)
	}
	return cloneReceipt(rcpt), nil
}

// Len reports the number of stored receipts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.receipts)
}

func cloneReceipt(rcpt receipt.Receipt) receipt.Receipt {
	if rcpt.Items != nil {
		items := make([]receipt.Item, len(rcpt.Items))
		copy(items, rcpt.Items)
		rcpt.Items = items
	}
	return rcpt
}
