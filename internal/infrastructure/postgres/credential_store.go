package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sungminna/exchange-credentials/internal/domain/model"
	"github.com/sungminna/exchange-credentials/internal/domain/repository"
)

const uniqueViolation = "23505"

// DefaultStatementTimeout bounds a single statement when the caller's
// context carries no earlier deadline
const DefaultStatementTimeout = 5 * time.Second

// Querier is the subset of *pgxpool.Pool the store issues statements through
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type credentialStore struct {
	db      Querier
	timeout time.Duration
}

// NewCredentialStore creates a PostgreSQL credential store.
// A non-positive timeout falls back to DefaultStatementTimeout.
func NewCredentialStore(db Querier, timeout time.Duration) repository.CredentialStore {
	if timeout <= 0 {
		timeout = DefaultStatementTimeout
	}
	return &credentialStore{db: db, timeout: timeout}
}

func (s *credentialStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *credentialStore) Insert(ctx context.Context, cred *model.Credential) (model.AccountID, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO accounts (uid, exchange, api_key, sign_key)
		VALUES ($1, $2, $3, $4)
		RETURNING uid
	`
	var uid string
	err := s.db.QueryRow(ctx, query,
		string(cred.AccountID), cred.Exchange.String(), cred.APIKey, cred.SignKey,
	).Scan(&uid)
	if err != nil {
		return "", fmt.Errorf("failed to insert credential: %w", classify(err))
	}
	return model.AccountID(uid), nil
}

func (s *credentialStore) UpdateSigningPayload(ctx context.Context, accountID model.AccountID, exchange model.ExchangeName, payload []byte) (model.AccountID, *string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `
		UPDATE accounts
		SET data_to_sign = $1
		WHERE uid = $2 AND exchange = $3
		RETURNING uid, api_key
	`
	var (
		uid    string
		apiKey *string
	)
	err := s.db.QueryRow(ctx, query, payload, string(accountID), exchange.String()).Scan(&uid, &apiKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to update signing payload: %w", classify(err))
	}
	return model.AccountID(uid), apiKey, nil
}

func (s *credentialStore) ClearAPIKey(ctx context.Context, accountID model.AccountID, exchange *model.ExchangeName) (model.AccountID, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `UPDATE accounts SET api_key = NULL WHERE uid = $1`
	args := []any{string(accountID)}
	if exchange != nil {
		query += ` AND exchange = $2`
		args = append(args, exchange.String())
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return "", fmt.Errorf("failed to clear api key: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return "", repository.ErrNoRow
	}
	return accountID, nil
}

func (s *credentialStore) DeleteRecord(ctx context.Context, accountID model.AccountID, exchange *model.ExchangeName) (model.AccountID, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `DELETE FROM accounts WHERE uid = $1`
	args := []any{string(accountID)}
	if exchange != nil {
		query += ` AND exchange = $2`
		args = append(args, exchange.String())
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return "", fmt.Errorf("failed to delete credential: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return "", repository.ErrNoRow
	}
	return accountID, nil
}

func (s *credentialStore) SelectAPIKey(ctx context.Context, accountID model.AccountID, exchange model.ExchangeName) (*string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT api_key
		FROM accounts
		WHERE uid = $1 AND exchange = $2
	`
	var apiKey *string
	if err := s.db.QueryRow(ctx, query, string(accountID), exchange.String()).Scan(&apiKey); err != nil {
		return nil, fmt.Errorf("failed to select api key: %w", classify(err))
	}
	return apiKey, nil
}

func (s *credentialStore) PartialUpdate(ctx context.Context, patch model.CredentialPatch) (model.AccountID, error) {
	stmt, ok := partialUpdateStatements[patch.Shape()]
	if !ok {
		return "", fmt.Errorf("no update statement for patch shape %s", patch.Shape())
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var uid string
	if err := s.db.QueryRow(ctx, stmt.query, stmt.args(patch)...).Scan(&uid); err != nil {
		return "", fmt.Errorf("failed to update credential: %w", classify(err))
	}
	return model.AccountID(uid), nil
}

func (s *credentialStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		return classify(err)
	}
	return nil
}

// classify maps driver errors onto the raw store outcomes
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNoRow
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrConflict, pgErr.ConstraintName)
	}

	return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
}
