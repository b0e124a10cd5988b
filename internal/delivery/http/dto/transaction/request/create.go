package request

// CreateTransactionRequest is the donor-facing creation body. Field names
// follow the contract the landing page already speaks.
type CreateTransactionRequest struct {
	Nama   string `json:"nama"`
	Email  string `json:"email"`
	Amount int64  `json:"amount"`
	Notes  string `json:"notes"`
}
