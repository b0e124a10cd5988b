package domain

type TransactionRepository interface {
	CreateTransaction(transaction *Transaction) error
	GetTransactionByOrderID(orderID string) (*Transaction, error)
	UpdateTransactionByOrderID(orderID string, patch *TransactionPatch) error
	GetTransactionsByStatus(status TransactionStatus) ([]*Transaction, error)
	GetAllTransactions() ([]*Transaction, error)
}
