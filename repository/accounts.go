package repository

import (
	"context"
	"fmt"
	"strings"

	"cantina-api/database"
	"cantina-api/models"
	"cantina-api/utils"
)

// Accounts stores users in the usuarios table. Passwords are kept as bcrypt
// hashes.
type Accounts struct {
	gw *database.Gateway
}

func NewAccounts(gw *database.Gateway) *Accounts {
	return &Accounts{gw: gw}
}

// Create inserts a new account and returns its id. An empty email is stored
// as NULL.
func (r *Accounts) Create(ctx context.Context, username, password, email string) (int64, error) {
	if strings.TrimSpace(username) == "" {
		return 0, models.NewValidationError("user", "is required")
	}
	if password == "" {
		return 0, models.NewValidationError("pass", "is required")
	}
	if len(password) > utils.MaxPasswordLength {
		return 0, models.NewValidationError("pass", fmt.Sprintf("must be at most %d bytes", utils.MaxPasswordLength))
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var mail *string
	if email != "" {
		mail = &email
	}

	id, err := r.gw.Insert(ctx, "insert account",
		`INSERT INTO usuarios (username, password, email) VALUES (?, ?, ?) RETURNING id`,
		username, hash, mail)
	if database.IsUniqueViolation(err) {
		return 0, fmt.Errorf("%q: %w", username, models.ErrDuplicateUsername)
	}
	return id, err
}

// FindByCredentials returns the account when username exists and password
// matches its hash. The returned account never carries the hash.
func (r *Accounts) FindByCredentials(ctx context.Context, username, password string) (*models.Account, bool, error) {
	var a models.Account
	found, err := r.gw.QueryRow(ctx, "find account", &a,
		`SELECT id, username, password, email, creado FROM usuarios WHERE username = ?`, username)
	if err != nil || !found {
		return nil, false, err
	}
	if !utils.CheckPasswordHash(password, a.Password) {
		return nil, false, nil
	}
	a.Password = ""
	return &a, true, nil
}
