package usecase

import (
	"log/slog"
	"time"

	"github.com/fundunity/donation-service/internal/domain"
	transactiondto "github.com/fundunity/donation-service/internal/usecase/dto/transaction"
)

// transactionTimeLayout is the timestamp format the gateway reports.
const transactionTimeLayout = "2006-01-02 15:04:05"

// MapTransactionStatus translates the gateway's transaction/fraud status
// pair into the local status vocabulary. Unrecognized gateway statuses
// resolve to pending so a later report can still settle the record.
func MapTransactionStatus(transactionStatus, fraudStatus string) domain.TransactionStatus {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return domain.StatusGagal
		}
		return domain.StatusBerhasil
	case "settlement":
		return domain.StatusBerhasil
	case "cancel", "deny", "expire":
		return domain.StatusGagal
	case "pending":
		return domain.StatusPending
	default:
		slog.Warn("unrecognized gateway transaction status", "transaction_status", transactionStatus)
		return domain.StatusPending
	}
}

// DeriveChannelFields extracts the channel display fields from the
// gateway payload: bank transfers carry virtual-account entries, the
// e-channel carries a bill key with a fixed issuing bank, wallet and QR
// channels are identified by the payment type alone.
func DeriveChannelFields(paymentType string, vaNumbers []transactiondto.VANumberInput, billKey string) (vaNumber, bank *string) {
	switch domain.ChannelOf(paymentType) {
	case domain.ChannelBankTransfer:
		if len(vaNumbers) > 0 {
			if vaNumbers[0].VANumber != "" {
				vaNumber = ptr(vaNumbers[0].VANumber)
			}
			if vaNumbers[0].Bank != "" {
				bank = ptr(vaNumbers[0].Bank)
			}
		}
	case domain.ChannelEChannel:
		if billKey != "" {
			vaNumber = ptr(billKey)
		}
		bank = ptr("mandiri")
	case domain.ChannelWalletQR:
		bank = ptr(paymentType)
	}
	return vaNumber, bank
}

// reconcileFields is the resolved view of one gateway report, shared by
// the webhook and polling reconcilers so both apply identical semantics.
type reconcileFields struct {
	Status          domain.TransactionStatus
	PaymentType     *string
	VANumber        *string
	Bank            *string
	FraudStatus     *string
	TransactionTime *time.Time
}

func resolveGatewayReport(
	transactionStatus, fraudStatus, paymentType, transactionTime string,
	vaNumbers []transactiondto.VANumberInput,
	billKey string) reconcileFields {

	fields := reconcileFields{
		Status: MapTransactionStatus(transactionStatus, fraudStatus),
	}
	fields.VANumber, fields.Bank = DeriveChannelFields(paymentType, vaNumbers, billKey)
	if paymentType != "" {
		fields.PaymentType = ptr(paymentType)
	}
	if fraudStatus != "" {
		fields.FraudStatus = ptr(fraudStatus)
	}
	if transactionTime != "" {
		if parsed, err := time.Parse(transactionTimeLayout, transactionTime); err == nil {
			fields.TransactionTime = &parsed
		} else {
			slog.Warn("unparseable gateway transaction time", "transaction_time", transactionTime)
		}
	}
	return fields
}

// buildPatch computes the merge-patch that brings the stored record in
// line with a resolved gateway report. With fillOnly set, derived fields
// are only written when the stored value is still missing (the polling
// fill-missing-info rule); otherwise any differing reported value wins.
// Returns nil when there is nothing to write.
func buildPatch(existing *domain.Transaction, fields reconcileFields, fillOnly bool) *domain.TransactionPatch {
	patch := &domain.TransactionPatch{}

	newStatus := fields.Status
	// terminal statuses never regress on a stale pending report
	if existing.Status.Terminal() && newStatus == domain.StatusPending {
		newStatus = existing.Status
	}
	if newStatus != existing.Status {
		patch.Status = &newStatus
	}

	patch.PaymentType = patchField(existing.PaymentType, fields.PaymentType, fillOnly)
	patch.VANumber = patchField(existing.VANumber, fields.VANumber, fillOnly)
	patch.Bank = patchField(existing.Bank, fields.Bank, fillOnly)
	patch.FraudStatus = patchField(existing.FraudStatus, fields.FraudStatus, fillOnly)

	if fields.TransactionTime != nil {
		if existing.TransactionTime == nil {
			patch.TransactionTime = fields.TransactionTime
		} else if !fillOnly && !existing.TransactionTime.Equal(*fields.TransactionTime) {
			patch.TransactionTime = fields.TransactionTime
		}
	}

	if patch.Empty() {
		return nil
	}
	return patch
}

func patchField(existing, reported *string, fillOnly bool) *string {
	if reported == nil {
		return nil
	}
	if existing == nil {
		return reported
	}
	if !fillOnly && *existing != *reported {
		return reported
	}
	return nil
}

func ptr(s string) *string {
	return &s
}
