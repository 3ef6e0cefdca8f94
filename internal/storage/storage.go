package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	bobDB        bob.DB
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
	Goals        sqlconfig.IGoalTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           db,
		bobDB:        bobDB,
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		Categories:   sqlconfig.NewCategoriesTable(bobDB),
		Goals:        sqlconfig.NewGoalsTable(bobDB),
	}, nil
}

// Write opens a database transaction and returns a Writer whose tables run
// inside it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(
		tx,
		sqlconfig.NewTransactionsTable(tx),
		sqlconfig.NewCategoriesTable(tx),
		sqlconfig.NewGoalsTable(tx),
	), nil
}

// Reader returns the read-only ledger view over the pooled connection.
func (s *Storage) Reader() *Reader {
	return NewReader(s.Transactions, s.Categories)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Ping checks the database connection.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}
