package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. Expects a MySQL database named 'companykata_test' on
// localhost:3306 and skips the test when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/companykata_test"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"CustomerOrder", "Customer", "Supplier", "Company"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the tables the company repository reads.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createCompanyTable := `
	CREATE TABLE IF NOT EXISTS Company (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(150) NOT NULL UNIQUE
	)`

	createCustomerTable := `
	CREATE TABLE IF NOT EXISTS Customer (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		companyId INT NOT NULL,
		name VARCHAR(100) NOT NULL,
		city VARCHAR(100) NOT NULL,
		UNIQUE KEY uq_company_name (companyId, name),
		FOREIGN KEY (companyId) REFERENCES Company(id) ON DELETE CASCADE
	)`

	createCustomerOrderTable := `
	CREATE TABLE IF NOT EXISTS CustomerOrder (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId CHAR(36) NOT NULL UNIQUE,
		customerId INT NOT NULL,
		value DECIMAL(10,2) NOT NULL,
		delivered TINYINT(1) NOT NULL DEFAULT 0,
		FOREIGN KEY (customerId) REFERENCES Customer(id) ON DELETE CASCADE,
		INDEX idx_customer (customerId)
	)`

	createSupplierTable := `
	CREATE TABLE IF NOT EXISTS Supplier (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		companyId INT NOT NULL,
		name VARCHAR(150) NOT NULL,
		FOREIGN KEY (companyId) REFERENCES Company(id) ON DELETE CASCADE,
		INDEX idx_company (companyId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Company", createCompanyTable},
		{"Customer", createCustomerTable},
		{"CustomerOrder", createCustomerOrderTable},
		{"Supplier", createSupplierTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
