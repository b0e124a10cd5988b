package domain

import "time"

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusBerhasil TransactionStatus = "berhasil"
	StatusGagal    TransactionStatus = "gagal"
)

// Terminal reports whether the status can no longer change.
// A stale gateway report must not move a transaction out of a terminal status.
func (s TransactionStatus) Terminal() bool {
	return s == StatusBerhasil || s == StatusGagal
}

type Transaction struct {
	ID              string
	OrderID         string
	DonorName       string
	DonorEmail      string
	Amount          int64
	Notes           string
	Status          TransactionStatus
	PaymentType     *string
	VANumber        *string
	Bank            *string
	FraudStatus     *string
	TransactionTime *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransactionPatch is a merge-patch applied by the reconcilers.
// Nil fields are left untouched; identifying fields are never part of a patch.
type TransactionPatch struct {
	Status          *TransactionStatus
	PaymentType     *string
	VANumber        *string
	Bank            *string
	FraudStatus     *string
	TransactionTime *time.Time
}

func (p *TransactionPatch) Empty() bool {
	return p.Status == nil &&
		p.PaymentType == nil &&
		p.VANumber == nil &&
		p.Bank == nil &&
		p.FraudStatus == nil &&
		p.TransactionTime == nil
}
