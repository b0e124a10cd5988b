package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fundunity/donation-service/internal/domain"
	transactiondto "github.com/fundunity/donation-service/internal/usecase/dto/transaction"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// CreateTransaction validates donor input, opens a charge session with
// the gateway and persists the initial pending record. The local record
// is written only after the gateway accepts the charge, so a gateway
// failure leaves no orphaned record.
func (uc *DefaultTransactionUsecase) CreateTransaction(ctx context.Context, input *transactiondto.CreateTransactionInput) (*transactiondto.CreateTransactionOutput, error) {
	if err := validateCreateInput(input); err != nil {
		uc.countDonation("validation_error")
		return nil, err
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	orderID := fmt.Sprintf("donation-%s", idGenerator())

	session, err := uc.Gateway.CreateCharge(ctx, &domain.ChargeRequest{
		OrderID:         orderID,
		GrossAmount:     input.Amount,
		DonorName:       input.DonorName,
		DonorEmail:      input.DonorEmail,
		ItemName:        "Donasi",
		NotificationURL: uc.ChargeOptions.NotificationURL,
		FinishURL:       uc.ChargeOptions.FinishURL,
	})
	if err != nil {
		uc.countDonation("gateway_error")
		if uc.Metrics != nil {
			uc.Metrics.GatewayErrorsTotal.WithLabelValues("create_charge").Inc()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}

	transaction := &domain.Transaction{
		ID:         uuid.New().String(),
		OrderID:    orderID,
		DonorName:  input.DonorName,
		DonorEmail: input.DonorEmail,
		Amount:     input.Amount,
		Notes:      input.Notes,
		Status:     domain.StatusPending,
		CreatedAt:  time.Now(),
	}
	if err := uc.TransactionRepo.CreateTransaction(transaction); err != nil {
		// the charge now exists gateway-side with no local record; the
		// poller cannot recover it, only an audit against the gateway can
		slog.Error("charge accepted but local write failed", "order_id", orderID, "error", err.Error())
		uc.countDonation("store_error")
		return nil, err
	}

	uc.countDonation("created")
	if uc.Metrics != nil {
		uc.Metrics.DonationsCreatedAmountTotal.Add(float64(input.Amount))
	}
	slog.Info("donation transaction created", "order_id", orderID, "amount", input.Amount)

	return &transactiondto.CreateTransactionOutput{
		OrderID:     orderID,
		SnapToken:   session.Token,
		RedirectURL: session.RedirectURL,
	}, nil
}

func validateCreateInput(input *transactiondto.CreateTransactionInput) error {
	if input.DonorName == "" {
		return fmt.Errorf("%w: donor name is required", domain.ErrValidation)
	}
	if input.DonorEmail == "" {
		return fmt.Errorf("%w: donor email is required", domain.ErrValidation)
	}
	if input.Notes == "" {
		return fmt.Errorf("%w: notes are required", domain.ErrValidation)
	}
	if input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive number", domain.ErrValidation)
	}
	return nil
}

func (uc *DefaultTransactionUsecase) countDonation(result string) {
	if uc.Metrics != nil {
		uc.Metrics.DonationsCreatedTotal.WithLabelValues(result).Inc()
	}
}
