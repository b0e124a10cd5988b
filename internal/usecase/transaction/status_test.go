package usecase

import (
	"testing"

	"github.com/fundunity/donation-service/internal/domain"
	transactiondto "github.com/fundunity/donation-service/internal/usecase/dto/transaction"
)

func TestMapTransactionStatus(t *testing.T) {
	cases := []struct {
		name              string
		transactionStatus string
		fraudStatus       string
		want              domain.TransactionStatus
	}{
		{"capture with fraud challenge fails", "capture", "challenge", domain.StatusGagal},
		{"capture with accept succeeds", "capture", "accept", domain.StatusBerhasil},
		{"capture without fraud status succeeds", "capture", "", domain.StatusBerhasil},
		{"settlement succeeds", "settlement", "", domain.StatusBerhasil},
		{"settlement ignores fraud status", "settlement", "challenge", domain.StatusBerhasil},
		{"cancel fails", "cancel", "", domain.StatusGagal},
		{"deny fails", "deny", "accept", domain.StatusGagal},
		{"expire fails", "expire", "", domain.StatusGagal},
		{"pending stays pending", "pending", "", domain.StatusPending},
		{"unrecognized status stays pending", "refund", "", domain.StatusPending},
		{"empty status stays pending", "", "", domain.StatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapTransactionStatus(tc.transactionStatus, tc.fraudStatus)
			if got != tc.want {
				t.Errorf("MapTransactionStatus(%q, %q) = %q, want %q",
					tc.transactionStatus, tc.fraudStatus, got, tc.want)
			}
		})
	}
}

func TestDeriveChannelFields(t *testing.T) {
	t.Run("bank transfer takes first virtual account entry", func(t *testing.T) {
		vaNumber, bank := DeriveChannelFields("bank_transfer", []transactiondto.VANumberInput{
			{Bank: "bca", VANumber: "1234567890"},
			{Bank: "bni", VANumber: "0987654321"},
		}, "")
		if vaNumber == nil || *vaNumber != "1234567890" {
			t.Errorf("vaNumber = %v, want 1234567890", vaNumber)
		}
		if bank == nil || *bank != "bca" {
			t.Errorf("bank = %v, want bca", bank)
		}
	})

	t.Run("bank transfer without entries leaves fields empty", func(t *testing.T) {
		vaNumber, bank := DeriveChannelFields("bank_transfer", nil, "")
		if vaNumber != nil || bank != nil {
			t.Errorf("expected nil fields, got vaNumber=%v bank=%v", vaNumber, bank)
		}
	})

	t.Run("echannel takes bill key and fixed bank label", func(t *testing.T) {
		vaNumber, bank := DeriveChannelFields("echannel", nil, "81915")
		if vaNumber == nil || *vaNumber != "81915" {
			t.Errorf("vaNumber = %v, want 81915", vaNumber)
		}
		if bank == nil || *bank != "mandiri" {
			t.Errorf("bank = %v, want mandiri", bank)
		}
	})

	t.Run("wallet channel uses payment type as bank", func(t *testing.T) {
		vaNumber, bank := DeriveChannelFields("gopay", nil, "")
		if vaNumber != nil {
			t.Errorf("vaNumber = %v, want nil", vaNumber)
		}
		if bank == nil || *bank != "gopay" {
			t.Errorf("bank = %v, want gopay", bank)
		}
	})

	t.Run("qr channel uses payment type as bank", func(t *testing.T) {
		_, bank := DeriveChannelFields("qris", nil, "")
		if bank == nil || *bank != "qris" {
			t.Errorf("bank = %v, want qris", bank)
		}
	})

	t.Run("unknown payment type leaves both fields empty", func(t *testing.T) {
		vaNumber, bank := DeriveChannelFields("cstore", []transactiondto.VANumberInput{
			{Bank: "bca", VANumber: "1234567890"},
		}, "81915")
		if vaNumber != nil || bank != nil {
			t.Errorf("expected nil fields, got vaNumber=%v bank=%v", vaNumber, bank)
		}
	})
}

func TestBuildPatchTerminalGuard(t *testing.T) {
	t.Run("terminal status is not regressed by a pending report", func(t *testing.T) {
		existing := &domain.Transaction{
			OrderID: "donation-1",
			Status:  domain.StatusBerhasil,
		}
		patch := buildPatch(existing, reconcileFields{Status: domain.StatusPending}, false)
		if patch != nil {
			t.Errorf("expected nil patch, got %+v", patch)
		}
	})

	t.Run("terminal record still accumulates missing payment fields", func(t *testing.T) {
		existing := &domain.Transaction{
			OrderID: "donation-1",
			Status:  domain.StatusBerhasil,
		}
		patch := buildPatch(existing, reconcileFields{
			Status:      domain.StatusBerhasil,
			PaymentType: ptr("gopay"),
			Bank:        ptr("gopay"),
		}, true)
		if patch == nil {
			t.Fatal("expected a patch filling missing fields")
		}
		if patch.Status != nil {
			t.Errorf("status should not be patched, got %v", *patch.Status)
		}
		if patch.PaymentType == nil || *patch.PaymentType != "gopay" {
			t.Errorf("paymentType = %v, want gopay", patch.PaymentType)
		}
	})
}
