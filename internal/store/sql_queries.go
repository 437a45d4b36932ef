package store

import sq "github.com/Masterminds/squirrel"

// Static statements. Placeholders use the $N form, which both pgx and
// go-sqlite3 bind positionally.
const (
	createUser = `INSERT INTO users (email, password, username)
    VALUES ($1, $2, $3)
    RETURNING id, email, username, created_at;`

	findUserByEmail = `SELECT id, email, password, username, created_at
    FROM users
    WHERE email = $1
    LIMIT 1;`

	findUserByID = `SELECT id, email, password, username, created_at
    FROM users
    WHERE id = $1
    LIMIT 1;`

	updateUserPassword = `UPDATE users SET password = $1 WHERE id = $2;`

	createTransaction = `INSERT INTO transactions (
			user_id,
			type,
			transaction_date,
			category_id,
			subcategory_id,
			amount,
			description,
			title,
			location
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;`

	getBalance = `SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE user_id = $1;`

	findCategories = `SELECT id, name, created_at
		FROM categories
		ORDER BY name ASC;`

	findAllSubcategories = `SELECT sc.id, sc.category_id, sc.name, c.name AS category_name
		FROM subcategories sc
		LEFT JOIN categories c ON sc.category_id = c.id
		ORDER BY c.name ASC, sc.name ASC;`

	findSubcategoriesByCategory = `SELECT id, category_id, name
		FROM subcategories
		WHERE category_id = $1
		ORDER BY name ASC;`
)

// psql builds the dynamic statements.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const transactionsTable = "transactions"

// transactionColumns is the projection scanned by scanTransaction.
var transactionColumns = []string{
	"t.id",
	"t.user_id",
	"t.type",
	"t.transaction_date",
	"t.category_id",
	"t.subcategory_id",
	"t.amount",
	"t.description",
	"t.title",
	"t.location",
	"t.created_at",
	"c.name AS category_name",
	"sc.name AS subcategory_name",
}

func selectTransactions() sq.SelectBuilder {
	return psql.Select(transactionColumns...).
		From("transactions t").
		LeftJoin("categories c ON t.category_id = c.id").
		LeftJoin("subcategories sc ON t.subcategory_id = sc.id")
}
