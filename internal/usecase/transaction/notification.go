package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fundunity/donation-service/internal/domain"
	transactiondto "github.com/fundunity/donation-service/internal/usecase/dto/transaction"
)

// HandleNotification runs one gateway notification through the webhook
// reconciliation state machine: verify, match, map, compare, patch.
// Processing the same notification twice leaves the record unchanged on
// the second pass.
func (uc *DefaultTransactionUsecase) HandleNotification(input *transactiondto.NotificationInput) (ReconcileOutcome, error) {
	if err := validateNotificationInput(input); err != nil {
		return "", err
	}

	if !uc.Verifier.Verify(input.OrderID, input.StatusCode, input.GrossAmount, input.SignatureKey) {
		slog.Warn("notification rejected", "order_id", input.OrderID, "reason", domain.ErrSignatureMismatch.Error())
		uc.countWebhook(OutcomeRejected)
		return OutcomeRejected, nil
	}

	existing, err := uc.TransactionRepo.GetTransactionByOrderID(input.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			// a notification never fabricates a transaction
			slog.Warn("notification for unknown order", "order_id", input.OrderID)
			uc.countWebhook(OutcomeUnmatched)
			return OutcomeUnmatched, nil
		}
		return "", err
	}

	fields := resolveGatewayReport(
		input.TransactionStatus,
		input.FraudStatus,
		input.PaymentType,
		input.TransactionTime,
		input.VANumbers,
		input.BillKey,
	)

	patch := buildPatch(existing, fields, false)
	if patch == nil {
		slog.Info("notification carried no changes", "order_id", input.OrderID, "status", existing.Status)
		uc.countWebhook(OutcomeUnchanged)
		return OutcomeUnchanged, nil
	}

	if err := uc.TransactionRepo.UpdateTransactionByOrderID(input.OrderID, patch); err != nil {
		return "", err
	}

	newStatus := existing.Status
	if patch.Status != nil {
		newStatus = *patch.Status
	}
	slog.Info("transaction updated from notification", "order_id", input.OrderID, "status", newStatus)
	uc.countWebhook(OutcomeUpdated)
	uc.publishStatusEvent(existing, newStatus, input.PaymentType)

	return OutcomeUpdated, nil
}

func validateNotificationInput(input *transactiondto.NotificationInput) error {
	switch {
	case input.OrderID == "":
		return fmt.Errorf("%w: order_id is missing", domain.ErrMalformedPayload)
	case input.StatusCode == "":
		return fmt.Errorf("%w: status_code is missing", domain.ErrMalformedPayload)
	case input.GrossAmount == "":
		return fmt.Errorf("%w: gross_amount is missing", domain.ErrMalformedPayload)
	case input.SignatureKey == "":
		return fmt.Errorf("%w: signature_key is missing", domain.ErrMalformedPayload)
	case input.TransactionStatus == "":
		return fmt.Errorf("%w: transaction_status is missing", domain.ErrMalformedPayload)
	}
	return nil
}

func (uc *DefaultTransactionUsecase) countWebhook(outcome ReconcileOutcome) {
	if uc.Metrics != nil {
		uc.Metrics.WebhookNotificationsTotal.WithLabelValues(string(outcome)).Inc()
	}
}
