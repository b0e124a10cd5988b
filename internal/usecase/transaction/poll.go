package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fundunity/donation-service/internal/domain"
	transactiondto "github.com/fundunity/donation-service/internal/usecase/dto/transaction"
)

// CheckPendingTransactions runs one reconciliation sweep: every locally
// pending transaction is checked against the gateway's authoritative
// status and patched when the status changed or previously missing
// payment details became available. Per-transaction lookup failures are
// logged and skipped; the sweep only fails when the store is unreachable.
// Sweeps never overlap within one process.
func (uc *DefaultTransactionUsecase) CheckPendingTransactions(ctx context.Context) error {
	if !uc.sweepRunning.CompareAndSwap(false, true) {
		return domain.ErrSweepInProgress
	}
	defer uc.sweepRunning.Store(false)

	start := time.Now()
	defer func() {
		if uc.Metrics != nil {
			uc.Metrics.PollSweepDuration.Observe(time.Since(start).Seconds())
		}
	}()

	pending, err := uc.TransactionRepo.GetTransactionsByStatus(domain.StatusPending)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		slog.Debug("no pending transactions to check")
		return nil
	}
	slog.Info("checking pending transactions", "count", len(pending))

	for i, transaction := range pending {
		if i > 0 && uc.QueryDelay > 0 {
			// spacing between consecutive gateway lookups, upstream rate limit
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(uc.QueryDelay):
			}
		}
		uc.checkTransaction(ctx, transaction)
	}

	return nil
}

func (uc *DefaultTransactionUsecase) checkTransaction(ctx context.Context, transaction *domain.Transaction) {
	report, err := uc.Gateway.GetTransactionStatus(ctx, transaction.OrderID)
	if err != nil {
		slog.Error("gateway status lookup failed", "order_id", transaction.OrderID, "error", err.Error())
		if uc.Metrics != nil {
			uc.Metrics.GatewayErrorsTotal.WithLabelValues("status_lookup").Inc()
		}
		return
	}

	vaNumbers := make([]transactiondto.VANumberInput, len(report.VANumbers))
	for i, va := range report.VANumbers {
		vaNumbers[i] = transactiondto.VANumberInput{Bank: va.Bank, VANumber: va.VANumber}
	}
	fields := resolveGatewayReport(
		report.TransactionStatus,
		report.FraudStatus,
		report.PaymentType,
		report.TransactionTime,
		vaNumbers,
		report.BillKey,
	)

	patch := buildPatch(transaction, fields, true)
	if patch == nil {
		slog.Debug("no update needed", "order_id", transaction.OrderID)
		return
	}

	if err := uc.TransactionRepo.UpdateTransactionByOrderID(transaction.OrderID, patch); err != nil {
		slog.Error("failed to update transaction from sweep", "order_id", transaction.OrderID, "error", err.Error())
		return
	}

	newStatus := transaction.Status
	if patch.Status != nil {
		newStatus = *patch.Status
	}
	slog.Info("transaction updated from sweep", "order_id", transaction.OrderID, "status", newStatus)
	if uc.Metrics != nil {
		uc.Metrics.PollUpdatesTotal.Inc()
	}
	if patch.Status != nil {
		uc.publishStatusEvent(transaction, newStatus, report.PaymentType)
	}
}
