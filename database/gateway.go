package database

import (
	"context"
	"errors"

	"cantina-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure
const uniqueViolation = "23505"

// Gateway executes parameterized SQL through a single gorm handle. Statements
// use "?" placeholders; the postgres dialector binds them as $n.
type Gateway struct {
	db   *gorm.DB
	inTx bool
}

func New(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Execute runs a write statement and returns the number of rows it touched.
func (g *Gateway) Execute(ctx context.Context, op, stmt string, args ...interface{}) (int64, error) {
	res := g.db.WithContext(ctx).Exec(stmt, args...)
	if res.Error != nil {
		return 0, wrap(op, res.Error)
	}
	return res.RowsAffected, nil
}

// Query scans every returned row into dest, which must point to a slice.
func (g *Gateway) Query(ctx context.Context, op string, dest interface{}, stmt string, args ...interface{}) error {
	if err := g.db.WithContext(ctx).Raw(stmt, args...).Scan(dest).Error; err != nil {
		return wrap(op, err)
	}
	return nil
}

// QueryRow scans the first returned row into dest and reports whether a row
// existed. An empty result is not an error.
func (g *Gateway) QueryRow(ctx context.Context, op string, dest interface{}, stmt string, args ...interface{}) (bool, error) {
	res := g.db.WithContext(ctx).Raw(stmt, args...).Scan(dest)
	if res.Error != nil {
		return false, wrap(op, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Insert runs an INSERT ... RETURNING id statement and returns the new id.
func (g *Gateway) Insert(ctx context.Context, op, stmt string, args ...interface{}) (int64, error) {
	var id int64
	res := g.db.WithContext(ctx).Raw(stmt, args...).Scan(&id)
	if res.Error != nil {
		return 0, wrap(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, wrap(op, errors.New("insert returned no id"))
	}
	return id, nil
}

// Transaction runs fn against a gateway bound to one database transaction.
// It commits when fn returns nil and rolls back otherwise. Calls made on a
// gateway that is already inside a transaction join it.
func (g *Gateway) Transaction(ctx context.Context, fn func(tx *Gateway) error) error {
	if g.inTx {
		return fn(g)
	}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Gateway{db: tx, inTx: true})
	})
	if err == nil || errors.Is(err, models.ErrStorage) || isBusinessError(err) {
		return err
	}
	return wrap("transaction", err)
}

// Ping checks that the database is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return wrap("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return wrap("ping", err)
	}
	return nil
}

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func wrap(op string, err error) error {
	return &models.StorageError{Op: op, Err: err}
}

// isBusinessError separates errors fn returned on purpose from begin/commit
// failures raised by the driver.
func isBusinessError(err error) bool {
	for _, business := range []error{models.ErrNotFound, models.ErrValidation,
		models.ErrInsufficientStock, models.ErrDuplicateUsername, models.ErrAuthentication} {
		if errors.Is(err, business) {
			return true
		}
	}
	return false
}
