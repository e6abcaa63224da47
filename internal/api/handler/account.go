package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sungminna/exchange-credentials/internal/domain/model"
	"github.com/sungminna/exchange-credentials/internal/service/credential"
)

// AccountHandler exposes the credential repository over HTTP
type AccountHandler struct {
	repo *credential.Repository
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(repo *credential.Repository) *AccountHandler {
	return &AccountHandler{repo: repo}
}

// CreateAccountRequest represents a request to store a new credential set
type CreateAccountRequest struct {
	UID            string             `json:"uid"`
	Exchange       model.ExchangeName `json:"exchange"`
	LegacyExchange model.ExchangeName `json:"_exchange"`
	APIKey         string             `json:"api_key"`
	SignKey        *string            `json:"sign_key"`
}

// SignRequest represents a request to record a payload and fetch the api key
type SignRequest struct {
	UID            string             `json:"uid"`
	Exchange       model.ExchangeName `json:"exchange"`
	LegacyExchange model.ExchangeName `json:"_exchange"`
	DataToSign     SignPayload        `json:"data_to_sign"`
}

// UpdateAccountRequest represents a partial update. Absent keys are left untouched.
type UpdateAccountRequest struct {
	UID            string             `json:"uid"`
	Exchange       model.ExchangeName `json:"exchange"`
	LegacyExchange model.ExchangeName `json:"_exchange"`
	APIKey         *string            `json:"api_key"`
	SignKey        *string            `json:"sign_key"`
}

// GetKeyRequest identifies the record whose api key is requested
type GetKeyRequest struct {
	UID            string             `json:"uid"`
	Exchange       model.ExchangeName `json:"exchange"`
	LegacyExchange model.ExchangeName `json:"_exchange"`
}

// AccountResponse carries the account ID echoed by the store
type AccountResponse struct {
	UID string `json:"uid"`
}

// SignResponse carries the account ID and its current api key
type SignResponse struct {
	UID    string `json:"uid"`
	APIKey string `json:"api_key"`
}

// KeyResponse carries a stored api key
type KeyResponse struct {
	APIKey string `json:"api_key"`
}

// CreateAccount handles credential creation
// POST /account
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": credential.KindValidationFailed.String()})
		return
	}

	exchange, ok := bodyExchange(c, req.Exchange, req.LegacyExchange)
	if !ok {
		return
	}

	id, err := h.repo.CreateAccount(c.Request.Context(), model.AccountID(req.UID), exchange, req.APIKey, req.SignKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{UID: id.String()})
}

// SignAndGetKey stores the payload to sign and returns the api key
// PUT /account
func (h *AccountHandler) SignAndGetKey(c *gin.Context) {
	var req SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": credential.KindValidationFailed.String()})
		return
	}

	exchange, ok := bodyExchange(c, req.Exchange, req.LegacyExchange)
	if !ok {
		return
	}

	id, apiKey, err := h.repo.SignAndGetKey(c.Request.Context(), model.AccountID(req.UID), exchange, req.DataToSign)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SignResponse{UID: id.String(), APIKey: apiKey})
}

// UpdateAccount applies a partial credential update
// PATCH /account
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": credential.KindValidationFailed.String()})
		return
	}

	exchange, ok := bodyExchange(c, req.Exchange, req.LegacyExchange)
	if !ok {
		return
	}

	id, err := h.repo.UpdateAccount(c.Request.Context(), model.AccountID(req.UID), exchange, req.APIKey, req.SignKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AccountResponse{UID: id.String()})
}

// GetAPIKey returns the stored api key
// PUT /key/account
func (h *AccountHandler) GetAPIKey(c *gin.Context) {
	var req GetKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": credential.KindValidationFailed.String()})
		return
	}

	exchange, ok := bodyExchange(c, req.Exchange, req.LegacyExchange)
	if !ok {
		return
	}

	apiKey, err := h.repo.GetAPIKey(c.Request.Context(), model.AccountID(req.UID), exchange)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, KeyResponse{APIKey: apiKey})
}

// RemoveAccount deletes the account's records, or a single record with ?exchange=
// DELETE /account/:uid
func (h *AccountHandler) RemoveAccount(c *gin.Context) {
	accountID := model.AccountID(c.Param("uid"))

	exchange, scoped, ok := exchangeScope(c)
	if !ok {
		return
	}

	var err error
	if scoped {
		err = h.repo.RemoveExchangeAccount(c.Request.Context(), accountID, exchange)
	} else {
		err = h.repo.RemoveAccount(c.Request.Context(), accountID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AccountResponse{UID: accountID.String()})
}

// RemoveKey clears the account's api keys, or a single record's key with ?exchange=
// DELETE /key/account/:uid
func (h *AccountHandler) RemoveKey(c *gin.Context) {
	accountID := model.AccountID(c.Param("uid"))

	exchange, scoped, ok := exchangeScope(c)
	if !ok {
		return
	}

	var err error
	if scoped {
		err = h.repo.RemoveExchangeKey(c.Request.Context(), accountID, exchange)
	} else {
		err = h.repo.RemoveKey(c.Request.Context(), accountID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AccountResponse{UID: accountID.String()})
}

// bodyExchange picks the exchange from the "exchange" key or its "_exchange"
// alias. Both may be sent only if they agree.
func bodyExchange(c *gin.Context, exchange, alias model.ExchangeName) (model.ExchangeName, bool) {
	switch {
	case exchange == "":
		return alias, true
	case alias == "" || alias == exchange:
		return exchange, true
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error": fmt.Sprintf("exchange %q and _exchange %q disagree", exchange.JSONName(), alias.JSONName()),
		"code":  credential.KindValidationFailed.String(),
	})
	return "", false
}

// exchangeScope reads the optional exchange query parameter.
// ok is false when a response has already been written.
func exchangeScope(c *gin.Context) (exchange model.ExchangeName, scoped bool, ok bool) {
	raw, present := c.GetQuery("exchange")
	if !present {
		return "", false, true
	}

	exchange, err := model.ParseExchangeName(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": credential.KindValidationFailed.String()})
		return "", false, false
	}
	return exchange, true, true
}
