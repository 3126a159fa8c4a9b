package service

import (
	"context"
	"fmt"
	"strings"

	"cantina-api/models"
	"cantina-api/repository"
)

// TokenIssuer signs session tokens for logged in accounts
type TokenIssuer interface {
	GenerateJWT(accountID int64, username string) (string, error)
}

// Accounts registers users and checks their credentials
type Accounts struct {
	repo   repository.AccountRepository
	tokens TokenIssuer
}

func NewAccounts(repo repository.AccountRepository, tokens TokenIssuer) *Accounts {
	return &Accounts{repo: repo, tokens: tokens}
}

// Register creates an account. The username must be unused.
func (s *Accounts) Register(ctx context.Context, in models.AccountRegister) (*models.Account, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	id, err := s.repo.Create(ctx, username, in.Password, email)
	if err != nil {
		return nil, err
	}

	a := &models.Account{ID: id, Username: username}
	if email != "" {
		a.Email = &email
	}
	return a, nil
}

// Login checks the credentials and returns the account with a signed token.
// Missing fields are treated like any other mismatch.
func (s *Accounts) Login(ctx context.Context, in models.AccountLogin) (*models.Account, string, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, "", models.ErrAuthentication
	}

	a, found, err := s.repo.FindByCredentials(ctx, username, in.Password)
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, "", models.ErrAuthentication
	}

	token, err := s.tokens.GenerateJWT(a.ID, a.Username)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return a, token, nil
}
