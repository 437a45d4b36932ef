package models

import "time"

// TransactionType is either income or expense.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single income or expense entry of a user.
type Transaction struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Type            TransactionType `json:"type"`
	TransactionDate Date            `json:"transaction_date"`
	CategoryID      int64           `json:"category_id"`
	SubcategoryID   *int64          `json:"subcategory_id"`
	Amount          float64         `json:"amount"`
	Description     string          `json:"description"`
	Title           *string         `json:"title"`
	Location        *string         `json:"location"`
	CreatedAt       time.Time       `json:"created_at"`

	// Filled by listing queries only.
	CategoryName    *string `json:"category_name,omitempty"`
	SubcategoryName *string `json:"subcategory_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	UserID     int64
	CategoryID *int64
}

// Balance sums a user's transactions by type.
type Balance struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}
