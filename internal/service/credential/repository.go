// Package credential holds the business rules for exchange credential sets:
// input validation, the mapping of raw store outcomes onto the domain error
// kinds, and the per-operation row guarantees.
package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/sungminna/exchange-credentials/internal/domain/model"
	"github.com/sungminna/exchange-credentials/internal/domain/repository"
)

// Repository is stateless apart from its store handle and is safe for
// concurrent use. It never retries; every call is one store statement.
type Repository struct {
	store repository.CredentialStore
}

// NewRepository creates a credential repository on top of store
func NewRepository(store repository.CredentialStore) *Repository {
	return &Repository{store: store}
}

// CreateAccount stores a new credential set for the (accountID, exchange) pair
func (r *Repository) CreateAccount(ctx context.Context, accountID model.AccountID, exchange model.ExchangeName, apiKey string, signKey *string) (model.AccountID, error) {
	if err := validateAccount(accountID, exchange); err != nil {
		return "", err
	}
	if apiKey == "" {
		return "", validationError("api key must not be empty")
	}

	id, err := r.store.Insert(ctx, model.NewCredential(accountID, exchange, apiKey, signKey))
	if err != nil {
		return "", r.translate("create account", err, accountID, &exchange)
	}

	log.WithFields(log.Fields{"account_id": id, "exchange": exchange}).Info("account created")
	return id, nil
}

// SignAndGetKey records payload as the account's signing payload and returns
// the current api key. A cleared key is returned as an empty string.
func (r *Repository) SignAndGetKey(ctx context.Context, accountID model.AccountID, exchange model.ExchangeName, payload []byte) (model.AccountID, string, error) {
	if err := validateAccount(accountID, exchange); err != nil {
		return "", "", err
	}
	if len(payload) == 0 {
		return "", "", validationError("payload to sign must not be empty")
	}

	id, apiKey, err := r.store.UpdateSigningPayload(ctx, accountID, exchange, payload)
	if err != nil {
		return "", "", r.translate("sign payload", err, accountID, &exchange)
	}

	log.WithFields(log.Fields{"account_id": id, "exchange": exchange, "payload_bytes": len(payload)}).Debug("signing payload stored")
	if apiKey == nil {
		return id, "", nil
	}
	return id, *apiKey, nil
}

// UpdateAccount rewrites exchange and whichever of apiKey and signKey are non-nil.
// The record is located by account ID alone.
func (r *Repository) UpdateAccount(ctx context.Context, accountID model.AccountID, exchange model.ExchangeName, apiKey, signKey *string) (model.AccountID, error) {
	if err := validateAccount(accountID, exchange); err != nil {
		return "", err
	}
	if apiKey != nil && *apiKey == "" {
		return "", validationError("api key must not be empty when supplied; use key removal to clear it")
	}

	patch := model.CredentialPatch{
		AccountID: accountID,
		Exchange:  exchange,
		APIKey:    apiKey,
		SignKey:   signKey,
	}

	id, err := r.store.PartialUpdate(ctx, patch)
	if err != nil {
		return "", r.translate("update account", err, accountID, nil)
	}

	log.WithFields(log.Fields{"account_id": id, "exchange": exchange, "fields": patch.Shape().String()}).Info("account updated")
	return id, nil
}

// GetAPIKey returns the stored api key. A record whose key was removed
// yields KeyNotSet; a missing record yields AccountNotFound.
func (r *Repository) GetAPIKey(ctx context.Context, accountID model.AccountID, exchange model.ExchangeName) (string, error) {
	if err := validateAccount(accountID, exchange); err != nil {
		return "", err
	}

	apiKey, err := r.store.SelectAPIKey(ctx, accountID, exchange)
	if err != nil {
		return "", r.translate("get api key", err, accountID, &exchange)
	}
	if apiKey == nil {
		return "", &Error{
			Kind:    KindKeyNotSet,
			Message: fmt.Sprintf("api key is not set for account %q on exchange %s", accountID, exchange),
		}
	}
	return *apiKey, nil
}

// RemoveKey clears the api key on every record of the account
func (r *Repository) RemoveKey(ctx context.Context, accountID model.AccountID) error {
	return r.removeKey(ctx, accountID, nil)
}

// RemoveExchangeKey clears the api key of a single (account, exchange) record
func (r *Repository) RemoveExchangeKey(ctx context.Context, accountID model.AccountID, exchange model.ExchangeName) error {
	if err := validateAccount(accountID, exchange); err != nil {
		return err
	}
	return r.removeKey(ctx, accountID, &exchange)
}

func (r *Repository) removeKey(ctx context.Context, accountID model.AccountID, exchange *model.ExchangeName) error {
	if strings.TrimSpace(string(accountID)) == "" {
		return validationError("account id must not be empty")
	}

	if _, err := r.store.ClearAPIKey(ctx, accountID, exchange); err != nil {
		return r.translate("remove key", err, accountID, exchange)
	}

	log.WithFields(scopeFields(accountID, exchange)).Info("api key removed")
	return nil
}

// RemoveAccount deletes every record of the account
func (r *Repository) RemoveAccount(ctx context.Context, accountID model.AccountID) error {
	return r.removeAccount(ctx, accountID, nil)
}

// RemoveExchangeAccount deletes a single (account, exchange) record
func (r *Repository) RemoveExchangeAccount(ctx context.Context, accountID model.AccountID, exchange model.ExchangeName) error {
	if err := validateAccount(accountID, exchange); err != nil {
		return err
	}
	return r.removeAccount(ctx, accountID, &exchange)
}

func (r *Repository) removeAccount(ctx context.Context, accountID model.AccountID, exchange *model.ExchangeName) error {
	if strings.TrimSpace(string(accountID)) == "" {
		return validationError("account id must not be empty")
	}

	if _, err := r.store.DeleteRecord(ctx, accountID, exchange); err != nil {
		return r.translate("remove account", err, accountID, exchange)
	}

	log.WithFields(scopeFields(accountID, exchange)).Info("account removed")
	return nil
}

// Ping reports whether the underlying store is reachable
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.store.Ping(ctx); err != nil {
		return &Error{Kind: KindStorageFailure, Message: "credential store is unreachable", Err: err}
	}
	return nil
}

// translate re-expresses a store outcome as a credential error
func (r *Repository) translate(op string, err error, accountID model.AccountID, exchange *model.ExchangeName) error {
	switch {
	case errors.Is(err, repository.ErrNoRow):
		return &Error{Kind: KindAccountNotFound, Message: notFoundMessage(accountID, exchange)}
	case errors.Is(err, repository.ErrConflict):
		msg := fmt.Sprintf("account %q already has credentials", accountID)
		if exchange != nil {
			msg = fmt.Sprintf("account %q already has credentials for exchange %s", accountID, *exchange)
		}
		return &Error{Kind: KindAlreadyExists, Message: msg}
	default:
		log.WithError(err).WithFields(scopeFields(accountID, exchange)).Errorf("%s: credential store failure", op)
		return &Error{
			Kind:    KindStorageFailure,
			Message: fmt.Sprintf("failed to %s for account %q", op, accountID),
			Err:     err,
		}
	}
}

func notFoundMessage(accountID model.AccountID, exchange *model.ExchangeName) string {
	if exchange == nil {
		return fmt.Sprintf("account %q not found", accountID)
	}
	return fmt.Sprintf("account %q not found on exchange %s", accountID, *exchange)
}

func validateAccount(accountID model.AccountID, exchange model.ExchangeName) error {
	if strings.TrimSpace(string(accountID)) == "" {
		return validationError("account id must not be empty")
	}
	if !exchange.Valid() {
		return validationError(fmt.Sprintf("unsupported exchange %q", exchange))
	}
	return nil
}

func validationError(msg string) error {
	return &Error{Kind: KindValidationFailed, Message: msg}
}

func scopeFields(accountID model.AccountID, exchange *model.ExchangeName) log.Fields {
	fields := log.Fields{"account_id": accountID}
	if exchange != nil {
		fields["exchange"] = *exchange
	}
	return fields
}
