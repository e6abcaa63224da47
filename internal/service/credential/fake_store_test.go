package credential

import (
	"context"
	"sync"

	"github.com/sungminna/exchange-credentials/internal/domain/model"
	"github.com/sungminna/exchange-credentials/internal/domain/repository"
)

type recordKey struct {
	uid      model.AccountID
	exchange model.ExchangeName
}

// memStore mirrors the accounts table semantics closely enough to drive
// repository scenarios without a database.
type memStore struct {
	mu      sync.Mutex
	records map[recordKey]model.Credential
	pingErr error
}

func newMemStore() *memStore {
	return &memStore{records: make(map[recordKey]model.Credential)}
}

func (s *memStore) Insert(_ context.Context, cred *model.Credential) (model.AccountID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := recordKey{cred.AccountID, cred.Exchange}
	if _, ok := s.records[key]; ok {
		return "", repository.ErrConflict
	}
	s.records[key] = *cred
	return cred.AccountID, nil
}

func (s *memStore) UpdateSigningPayload(_ context.Context, accountID model.AccountID, exchange model.ExchangeName, payload []byte) (model.AccountID, *string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := recordKey{accountID, exchange}
	rec, ok := s.records[key]
	if !ok {
		return "", nil, repository.ErrNoRow
	}
	rec.SigningPayload = append([]byte(nil), payload...)
	s.records[key] = rec
	return accountID, rec.APIKey, nil
}

func (s *memStore) ClearAPIKey(_ context.Context, accountID model.AccountID, exchange *model.ExchangeName) (model.AccountID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key, rec := range s.records {
		if matches(key, accountID, exchange) {
			rec.APIKey = nil
			s.records[key] = rec
			n++
		}
	}
	if n == 0 {
		return "", repository.ErrNoRow
	}
	return accountID, nil
}

func (s *memStore) DeleteRecord(_ context.Context, accountID model.AccountID, exchange *model.ExchangeName) (model.AccountID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key := range s.records {
		if matches(key, accountID, exchange) {
			delete(s.records, key)
			n++
		}
	}
	if n == 0 {
		return "", repository.ErrNoRow
	}
	return accountID, nil
}

func (s *memStore) SelectAPIKey(_ context.Context, accountID model.AccountID, exchange model.ExchangeName) (*string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[recordKey{accountID, exchange}]
	if !ok {
		return nil, repository.ErrNoRow
	}
	return rec.APIKey, nil
}

func (s *memStore) PartialUpdate(_ context.Context, patch model.CredentialPatch) (model.AccountID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []recordKey
	for key := range s.records {
		if key.uid == patch.AccountID {
			matched = append(matched, key)
		}
	}
	switch {
	case len(matched) == 0:
		return "", repository.ErrNoRow
	case len(matched) > 1:
		// every record would collapse onto the same (uid, exchange) key
		return "", repository.ErrConflict
	}

	old := matched[0]
	rec := s.records[old]
	rec.Exchange = patch.Exchange
	if patch.APIKey != nil {
		v := *patch.APIKey
		rec.APIKey = &v
	}
	if patch.SignKey != nil {
		v := *patch.SignKey
		rec.SignKey = &v
	}
	delete(s.records, old)
	s.records[recordKey{rec.AccountID, rec.Exchange}] = rec
	return rec.AccountID, nil
}

func (s *memStore) Ping(context.Context) error {
	return s.pingErr
}

func (s *memStore) get(accountID model.AccountID, exchange model.ExchangeName) (model.Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[recordKey{accountID, exchange}]
	return rec, ok
}

func matches(key recordKey, accountID model.AccountID, exchange *model.ExchangeName) bool {
	if key.uid != accountID {
		return false
	}
	return exchange == nil || key.exchange == *exchange
}
