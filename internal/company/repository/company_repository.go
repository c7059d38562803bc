package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"companykata/internal/domain"
	"companykata/internal/errors"
)

type MySQLCompanyRepository struct {
	db          *sql.DB
	companyName string
}

func NewMySQLCompanyRepository(db *sql.DB, companyName string) *MySQLCompanyRepository {
	return &MySQLCompanyRepository{db: db, companyName: companyName}
}

// Load reads the whole aggregate. Customers, orders and suppliers come back in insertion order.
func (r *MySQLCompanyRepository) Load(ctx context.Context) (*domain.Company, error) {
	var companyID int
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM Company WHERE name = ?`, r.companyName).Scan(&companyID, &name)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("company %s not found", r.companyName))
	}
	if err != nil {
		return nil, fmt.Errorf("querying company by name: %w", err)
	}

	company := domain.NewCompany(name)

	customersByID, err := r.loadCustomers(ctx, companyID, company)
	if err != nil {
		return nil, err
	}

	if err := r.loadOrders(ctx, companyID, customersByID); err != nil {
		return nil, err
	}

	if err := r.loadSuppliers(ctx, companyID, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (r *MySQLCompanyRepository) loadCustomers(ctx context.Context, companyID int, company *domain.Company) (map[int]*domain.Customer, error) {
	query := `
		SELECT id, name, city
		FROM Customer
		WHERE companyId = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	customersByID := make(map[int]*domain.Customer)
	for rows.Next() {
		var id int
		var name, city string
		if err := rows.Scan(&id, &name, &city); err != nil {
			return nil, fmt.Errorf("scanning customer row: %w", err)
		}
		customer := domain.NewCustomer(name, city)
		if err := company.AddCustomer(customer); err != nil {
			return nil, err
		}
		customersByID[id] = customer
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customersByID, nil
}

func (r *MySQLCompanyRepository) loadOrders(ctx context.Context, companyID int, customersByID map[int]*domain.Customer) error {
	query := `
		SELECT o.customerId, o.orderId, o.value, o.delivered
		FROM CustomerOrder o
		JOIN Customer c ON c.id = o.customerId
		WHERE c.companyId = ?
		ORDER BY o.id
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var customerID int
		var orderID uuid.UUID
		var value float64
		var delivered bool
		if err := rows.Scan(&customerID, &orderID, &value, &delivered); err != nil {
			return fmt.Errorf("scanning order row: %w", err)
		}
		customer, ok := customersByID[customerID]
		if !ok {
			return errors.NewInternalError(fmt.Sprintf("order %s references unknown customer %d", orderID, customerID), nil)
		}
		customer.AddOrder(domain.RestoreOrder(orderID, value, delivered))
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating order rows: %w", err)
	}

	return nil
}

func (r *MySQLCompanyRepository) loadSuppliers(ctx context.Context, companyID int, company *domain.Company) error {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM Supplier WHERE companyId = ? ORDER BY id`, companyID)
	if err != nil {
		return fmt.Errorf("querying suppliers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scanning supplier row: %w", err)
		}
		company.AddSupplier(domain.NewSupplier(name))
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating supplier rows: %w", err)
	}

	return nil
}

// SaveDeliveries flags the given orders delivered in a single transaction. The flag is only ever set.
func (r *MySQLCompanyRepository) SaveDeliveries(ctx context.Context, orderIDs []uuid.UUID) error {
	if len(orderIDs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delivery transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range orderIDs {
		if err := r.markDelivered(ctx, tx, id); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing deliveries: %w", err)
	}

	return nil
}

func (r *MySQLCompanyRepository) markDelivered(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	result, err := tx.ExecContext(ctx, `UPDATE CustomerOrder SET delivered = 1 WHERE orderId = ?`, id.String())
	if err != nil {
		return fmt.Errorf("updating order delivery: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	// MySQL reports 0 rows for an already delivered order, so tell that apart from a missing one.
	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM CustomerOrder WHERE orderId = ?`, id.String()).Scan(&exists)
	if err == sql.ErrNoRows {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return fmt.Errorf("querying order by id: %w", err)
	}

	return nil
}
