package postgres

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
)

// ReceiptJournal implements port.ReceiptJournal using pgxpool for PostgreSQL.
// Big integers travel as text and are cast to NUMERIC in SQL.
type ReceiptJournal struct {
	pool *pgxpool.Pool
}

// NewReceiptJournal returns a new journal instance.
func NewReceiptJournal(pool *pgxpool.Pool) *ReceiptJournal {
	return &ReceiptJournal{pool: pool}
}

// Save inserts one receipt. Saving the same tx hash twice is a no-op.
func (j *ReceiptJournal) Save(ctx context.Context, r domain.Receipt) error {
	_, err := j.pool.Exec(ctx, `
        INSERT INTO action_receipts
            (id, action, campaign_id, account, tx_hash, block_number, gas_used, value_wei, created_at)
        VALUES ($1::uuid, $2, $3::numeric, $4, $5, $6, $7, $8::numeric, $9)
        ON CONFLICT (tx_hash) DO NOTHING`,
		r.ID.String(),
		string(r.Action),
		bigText(r.CampaignID),
		r.Account.Hex(),
		r.TxHash.Hex(),
		int64(r.BlockNumber),
		int64(r.GasUsed),
		bigText(r.ValueWei),
		r.CreatedAt,
	)
	return err
}

// List returns up to limit receipts, newest first, optionally for one account.
func (j *ReceiptJournal) List(ctx context.Context, account *common.Address, limit int) ([]domain.Receipt, error) {
	query := `
        SELECT id::text, action, campaign_id::text, account, tx_hash,
               block_number, gas_used, value_wei::text, created_at
        FROM action_receipts`
	args := []interface{}{limit}
	if account != nil {
		query += ` WHERE account = $2`
		args = append(args, account.Hex())
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	rows, err := j.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Receipt, error) {
		var (
			id, action, acct, hash string
			campaignID, value      *string
			block, gas             int64
			createdAt              time.Time
		)
		if err := row.Scan(&id, &action, &campaignID, &acct, &hash, &block, &gas, &value, &createdAt); err != nil {
			return domain.Receipt{}, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return domain.Receipt{}, fmt.Errorf("receipt id %q: %w", id, err)
		}
		return domain.Receipt{
			ID:          parsed,
			Action:      domain.Action(action),
			CampaignID:  parseBig(campaignID),
			Account:     common.HexToAddress(acct),
			TxHash:      common.HexToHash(hash),
			BlockNumber: uint64(block),
			GasUsed:     uint64(gas),
			ValueWei:    parseBig(value),
			CreatedAt:   createdAt,
		}, nil
	})
}

func bigText(v *big.Int) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}

func parseBig(s *string) *big.Int {
	if s == nil {
		return nil
	}
	v, ok := new(big.Int).SetString(*s, 10)
	if !ok {
		return nil
	}
	return v
}
