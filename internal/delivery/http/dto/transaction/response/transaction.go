package response

import "time"

type CreateTransactionResponse struct {
	SnapToken   string `json:"snapToken"`
	RedirectURL string `json:"redirectUrl"`
	Message     string `json:"message"`
}

type TransactionResponse struct {
	OrderID         string     `json:"orderId"`
	Nama            string     `json:"nama"`
	Email           string     `json:"email"`
	Amount          int64      `json:"amount"`
	Notes           string     `json:"notes"`
	Status          string     `json:"status"`
	PaymentType     *string    `json:"paymentType"`
	VANumber        *string    `json:"vaNumber"`
	Bank            *string    `json:"bank"`
	FraudStatus     *string    `json:"fraudStatus"`
	TransactionTime *time.Time `json:"transactionTime"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
