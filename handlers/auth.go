package handlers

import (
	"net/http"

	"cantina-api/models"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the /usuarios routes
type AccountHandler struct {
	accounts AccountService
}

func NewAccountHandler(accounts AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// RegisterUser creates a new user account
func (h *AccountHandler) RegisterUser(c *gin.Context) {
	var input models.AccountRegister

	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    account.ID,
		"user":  account.Username,
		"email": account.Email,
	})
}

// LoginUser authenticates a user and returns JWT token
func (h *AccountHandler) LoginUser(c *gin.Context) {
	var input models.AccountLogin

	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	account, token, err := h.accounts.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    account.ID,
		"user":  account.Username,
		"email": account.Email,
		"token": token,
	})
}
