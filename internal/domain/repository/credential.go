package repository

import (
	"context"
	"errors"

	"github.com/sungminna/exchange-credentials/internal/domain/model"
)

// Raw store outcomes. Implementations of CredentialStore return these
// (possibly wrapped) and never interpret their business meaning.
var (
	// ErrNoRow means no record matched the statement's key
	ErrNoRow = errors.New("no matching credential row")
	// ErrConflict means the (account, exchange) uniqueness boundary was hit
	ErrConflict = errors.New("credential row already exists")
	// ErrStoreUnavailable wraps connectivity, timeout and other driver failures
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

//go:generate mockgen -source=credential.go -destination=mocks/mock_credential.go -package=mocks

// CredentialStore defines the statements issued against the accounts table.
// Every method is a single statement; none spans more than one call.
type CredentialStore interface {
	// Insert creates a record and returns the stored account ID
	Insert(ctx context.Context, cred *model.Credential) (model.AccountID, error)
	// UpdateSigningPayload stores payload on the (account, exchange) record and
	// returns the account ID and the current api_key, which may be nil
	UpdateSigningPayload(ctx context.Context, accountID model.AccountID, exchange model.ExchangeName, payload []byte) (model.AccountID, *string, error)
	// ClearAPIKey nulls api_key. A nil exchange clears it on every record of the account.
	ClearAPIKey(ctx context.Context, accountID model.AccountID, exchange *model.ExchangeName) (model.AccountID, error)
	// DeleteRecord removes records. A nil exchange removes every record of the account.
	DeleteRecord(ctx context.Context, accountID model.AccountID, exchange *model.ExchangeName) (model.AccountID, error)
	// SelectAPIKey returns the stored api_key, nil when it has been cleared
	SelectAPIKey(ctx context.Context, accountID model.AccountID, exchange model.ExchangeName) (*string, error)
	// PartialUpdate writes exchange plus whichever optional fields the patch carries
	PartialUpdate(ctx context.Context, patch model.CredentialPatch) (model.AccountID, error)
	// Ping checks the store is reachable
	Ping(ctx context.Context) error
}
