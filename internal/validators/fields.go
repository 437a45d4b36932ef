package validators

// Request body field names shared by the rule sets and the handlers.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldUsername        = "username"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"

	FieldType            = "type"
	FieldTransactionDate = "transaction_date"
	FieldCategoryID      = "category_id"
	FieldSubcategoryID   = "subcategory_id"
	FieldAmount          = "amount"
	FieldDescription     = "description"
	FieldTitle           = "title"
	FieldLocation        = "location"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	// DateLayout is the wire format of transaction dates.
	DateLayout = "2006-01-02"

	MinPasswordLength = 8
)

// Register declares the rules of a registration request.
func Register(v *FieldValidator) {
	v.Required(FieldEmail, FieldPassword, FieldUsername).
		Email(FieldEmail).
		MinLength(FieldPassword, MinPasswordLength)
}

// Login declares the rules of a login request.
func Login(v *FieldValidator) {
	v.Required(FieldEmail, FieldPassword).
		Email(FieldEmail)
}

// ChangePassword declares the rules of a password change.
func ChangePassword(v *FieldValidator) {
	v.Required(FieldCurrentPassword, FieldNewPassword).
		MinLength(FieldNewPassword, MinPasswordLength)
}

// Transaction declares the rules shared by transaction create and update.
func Transaction(v *FieldValidator) {
	v.Required(FieldType, FieldTransactionDate, FieldCategoryID, FieldAmount).
		In(FieldType, TransactionTypeIncome, TransactionTypeExpense).
		Date(FieldTransactionDate, DateLayout).
		Integer(FieldCategoryID).
		Numeric(FieldAmount).
		Min(FieldAmount, 0)

	// an empty subcategory means "none"
	if v.Get(FieldSubcategoryID) != "" {
		v.Integer(FieldSubcategoryID)
	}
}
