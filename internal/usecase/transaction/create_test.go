package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fundunity/donation-service/internal/domain"
	transactiondto "github.com/fundunity/donation-service/internal/usecase/dto/transaction"
)

func validCreateInput() *transactiondto.CreateTransactionInput {
	return &transactiondto.CreateTransactionInput{
		DonorName:  "Budi",
		DonorEmail: "budi@example.com",
		Amount:     50000,
		Notes:      "Semoga bermanfaat",
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending record and returns session", func(t *testing.T) {
		repo := NewMockTransactionRepository()
		gateway := &MockPaymentGateway{}
		uc, _ := newTestUsecase(repo, gateway)

		output, err := uc.CreateTransaction(ctx, validCreateInput())
		if err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
		if output.SnapToken != "snap-token" {
			t.Errorf("SnapToken = %q, want snap-token", output.SnapToken)
		}
		if !strings.HasPrefix(output.OrderID, "donation-") {
			t.Errorf("OrderID = %q, want donation- prefix", output.OrderID)
		}

		stored, ok := repo.Transactions[output.OrderID]
		if !ok {
			t.Fatalf("no record stored for %s", output.OrderID)
		}
		if stored.Status != domain.StatusPending {
			t.Errorf("status = %q, want pending", stored.Status)
		}
		if stored.Amount != 50000 {
			t.Errorf("amount = %d, want 50000", stored.Amount)
		}
		if len(gateway.ChargeCalls) != 1 {
			t.Fatalf("expected 1 charge call, got %d", len(gateway.ChargeCalls))
		}
		if gateway.ChargeCalls[0].OrderID != output.OrderID {
			t.Errorf("charge order id %q does not match %q", gateway.ChargeCalls[0].OrderID, output.OrderID)
		}
		if gateway.ChargeCalls[0].NotificationURL == "" {
			t.Error("charge request carried no notification URL")
		}
	})

	t.Run("two creations never share an order id", func(t *testing.T) {
		repo := NewMockTransactionRepository()
		uc, _ := newTestUsecase(repo, &MockPaymentGateway{})

		first, err := uc.CreateTransaction(ctx, validCreateInput())
		if err != nil {
			t.Fatalf("first creation failed: %v", err)
		}
		second, err := uc.CreateTransaction(ctx, validCreateInput())
		if err != nil {
			t.Fatalf("second creation failed: %v", err)
		}
		if first.OrderID == second.OrderID {
			t.Errorf("order ids collided: %q", first.OrderID)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*transactiondto.CreateTransactionInput)
		}{
			{"missing name", func(in *transactiondto.CreateTransactionInput) { in.DonorName = "" }},
			{"missing email", func(in *transactiondto.CreateTransactionInput) { in.DonorEmail = "" }},
			{"missing notes", func(in *transactiondto.CreateTransactionInput) { in.Notes = "" }},
			{"zero amount", func(in *transactiondto.CreateTransactionInput) { in.Amount = 0 }},
			{"negative amount", func(in *transactiondto.CreateTransactionInput) { in.Amount = -500 }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := NewMockTransactionRepository()
				gateway := &MockPaymentGateway{}
				uc, _ := newTestUsecase(repo, gateway)

				input := validCreateInput()
				tc.mutate(input)

				_, err := uc.CreateTransaction(ctx, input)
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("err = %v, want ErrValidation", err)
				}
				if len(gateway.ChargeCalls) != 0 {
					t.Error("gateway must not be called for invalid input")
				}
				if repo.CreateCalls != 0 {
					t.Error("nothing must be persisted for invalid input")
				}
			})
		}
	})

	t.Run("gateway failure persists nothing", func(t *testing.T) {
		repo := NewMockTransactionRepository()
		gateway := &MockPaymentGateway{
			ChargeFunc: func(req *domain.ChargeRequest) (*domain.ChargeSession, error) {
				return nil, errors.New("midtrans responded 500 Internal Server Error")
			},
		}
		uc, _ := newTestUsecase(repo, gateway)

		_, err := uc.CreateTransaction(ctx, validCreateInput())
		if !errors.Is(err, domain.ErrGateway) {
			t.Fatalf("err = %v, want ErrGateway", err)
		}
		if repo.CreateCalls != 0 {
			t.Error("no record may be written when the gateway rejects the charge")
		}
	})

	t.Run("store failure after gateway acceptance surfaces the error", func(t *testing.T) {
		repo := NewMockTransactionRepository()
		repo.CreateErr = errors.New("connection refused")
		gateway := &MockPaymentGateway{}
		uc, _ := newTestUsecase(repo, gateway)

		_, err := uc.CreateTransaction(ctx, validCreateInput())
		if err == nil {
			t.Fatal("expected an error when the store is unavailable")
		}
		if len(gateway.ChargeCalls) != 1 {
			t.Errorf("expected the charge to have been attempted, got %d calls", len(gateway.ChargeCalls))
		}
	})
}
