package mapping

import (
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
)

// ToDomainLedgerEntry converts a DB ledger entry row to the domain representation.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:   m.EntryID,
		BatchID:   m.BatchID,
		AccountID: m.AccountID,
		Direction: domain.EntryDirection(m.Direction),
		Amount:    m.Amount,
		Currency:  m.Currency,
	}
}

// ToDomainLedgerEntrySlice converts a slice of DB ledger entry rows.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
