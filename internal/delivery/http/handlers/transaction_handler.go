package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fundunity/donation-service/internal/delivery/http/dto/transaction/request"
	"github.com/fundunity/donation-service/internal/delivery/http/dto/transaction/response"
	"github.com/fundunity/donation-service/internal/domain"
	transactiondto "github.com/fundunity/donation-service/internal/usecase/dto/transaction"
	usecase "github.com/fundunity/donation-service/internal/usecase/transaction"
	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	Usecase usecase.TransactionUsecase
}

func NewTransactionHandler(uc usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{Usecase: uc}
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var body request.CreateTransactionRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(response.ErrorResponse{Error: "invalid request body"})
	}

	output, err := h.Usecase.CreateTransaction(c.Context(), &transactiondto.CreateTransactionInput{
		DonorName:  body.Nama,
		DonorEmail: body.Email,
		Amount:     body.Amount,
		Notes:      body.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(response.ErrorResponse{Error: err.Error()})
		}
		if errors.Is(err, domain.ErrGateway) {
			return c.Status(fiber.StatusBadGateway).JSON(response.ErrorResponse{Error: "failed to create transaction"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(response.ErrorResponse{Error: "failed to create transaction"})
	}

	return c.Status(fiber.StatusCreated).JSON(response.CreateTransactionResponse{
		SnapToken:   output.SnapToken,
		RedirectURL: output.RedirectURL,
		Message:     "Transaction created successfully",
	})
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	transactions, err := h.Usecase.GetTransactions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.ErrorResponse{Error: "failed to fetch transactions"})
	}

	out := make([]response.TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		out[i] = response.TransactionResponse{
			OrderID:         transaction.OrderID,
			Nama:            transaction.DonorName,
			Email:           transaction.DonorEmail,
			Amount:          transaction.Amount,
			Notes:           transaction.Notes,
			Status:          string(transaction.Status),
			PaymentType:     transaction.PaymentType,
			VANumber:        transaction.VANumber,
			Bank:            transaction.Bank,
			FraudStatus:     transaction.FraudStatus,
			TransactionTime: transaction.TransactionTime,
			CreatedAt:       transaction.CreatedAt,
		}
	}
	return c.JSON(out)
}

// HandleNotification acknowledges a well-formed webhook immediately and
// reconciles in the background, so the gateway never retries a
// notification this service has durably received. Reconciliation
// failures after the acknowledgment are logged only.
func (h *TransactionHandler) HandleNotification(c *fiber.Ctx) error {
	var body request.NotificationRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(response.ErrorResponse{Error: "invalid notification body"})
	}
	if !body.WellFormed() {
		return c.Status(fiber.StatusBadRequest).JSON(response.ErrorResponse{Error: "missing required notification fields"})
	}

	input := &transactiondto.NotificationInput{
		OrderID:           body.OrderID,
		StatusCode:        body.StatusCode,
		GrossAmount:       body.GrossAmount,
		SignatureKey:      body.SignatureKey,
		TransactionStatus: body.TransactionStatus,
		FraudStatus:       body.FraudStatus,
		PaymentType:       body.PaymentType,
		TransactionTime:   body.TransactionTime,
		BillKey:           body.BillKey,
	}
	for _, va := range body.VANumbers {
		input.VANumbers = append(input.VANumbers, transactiondto.VANumberInput{
			Bank:     va.Bank,
			VANumber: va.VANumber,
		})
	}

	go func() {
		outcome, err := h.Usecase.HandleNotification(input)
		if err != nil {
			slog.Error("notification processing failed", "order_id", input.OrderID, "error", err.Error())
			return
		}
		slog.Info("notification processed", "order_id", input.OrderID, "outcome", string(outcome))
	}()

	return c.JSON(fiber.Map{"received": true})
}

// CheckStatus synchronously runs one polling sweep on demand.
func (h *TransactionHandler) CheckStatus(c *fiber.Ctx) error {
	// a sweep outlives the request on purpose: in-flight updates are
	// never aborted by a disconnecting caller
	err := h.Usecase.CheckPendingTransactions(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrSweepInProgress) {
			return c.Status(fiber.StatusConflict).JSON(response.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(response.ErrorResponse{Error: "failed to check transaction status"})
	}
	return c.JSON(fiber.Map{"message": "transaction status checked & updated"})
}
