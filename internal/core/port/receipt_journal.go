package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

// ReceiptJournal stores confirmed action receipts. It is an outbound port
// in hexagonal architecture; the chain remains the source of truth and the
// journal is only a history of what this service submitted.
type ReceiptJournal interface {
	// Save appends a receipt.
	Save(ctx context.Context, r domain.Receipt) error
	// List returns the newest receipts first. A nil account lists all.
	List(ctx context.Context, account *common.Address, limit int) ([]domain.Receipt, error)
}
