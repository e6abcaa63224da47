package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AccountID identifies the owner of a credential set
type AccountID string

func (id AccountID) String() string {
	return string(id)
}

// ExchangeName represents a supported exchange
type ExchangeName string

const (
	ExchangeBinance  ExchangeName = "Binance"
	ExchangeHitBtc   ExchangeName = "HitBtc"
	ExchangeKraken   ExchangeName = "Kraken"
	ExchangeOkex     ExchangeName = "Okex"
	ExchangeKucoin   ExchangeName = "Kucoin"
	ExchangeBitfinex ExchangeName = "Bitfinex"
	ExchangeHuobi    ExchangeName = "Huobi"
	ExchangeQuoine   ExchangeName = "Quoine"
)

// Exchanges lists every supported exchange in declaration order
var Exchanges = []ExchangeName{
	ExchangeBinance,
	ExchangeHitBtc,
	ExchangeKraken,
	ExchangeOkex,
	ExchangeKucoin,
	ExchangeBitfinex,
	ExchangeHuobi,
	ExchangeQuoine,
}

// ParseExchangeName resolves an exchange name case-insensitively.
// Both the stored form ("HitBtc") and the JSON form ("hitBtc") are accepted.
func ParseExchangeName(s string) (ExchangeName, error) {
	for _, ex := range Exchanges {
		if strings.EqualFold(string(ex), strings.TrimSpace(s)) {
			return ex, nil
		}
	}
	return "", fmt.Errorf("unknown exchange %q", s)
}

func (e ExchangeName) String() string {
	return string(e)
}

// Valid reports whether e is one of the supported exchanges
func (e ExchangeName) Valid() bool {
	for _, ex := range Exchanges {
		if ex == e {
			return true
		}
	}
	return false
}

// JSONName returns the camelCase form used on the wire
func (e ExchangeName) JSONName() string {
	if e == "" {
		return ""
	}
	return strings.ToLower(string(e[:1])) + string(e[1:])
}

func (e ExchangeName) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.JSONName())
}

func (e *ExchangeName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("exchange must be a string: %w", err)
	}
	parsed, err := ParseExchangeName(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Credential is the persisted credential set for one (account, exchange) pair.
// APIKey is nil once the key has been removed; the record itself still exists.
type Credential struct {
	AccountID      AccountID    `json:"uid"`
	Exchange       ExchangeName `json:"exchange"`
	APIKey         *string      `json:"api_key,omitempty"`
	SignKey        *string      `json:"-"` // Never expose the signing secret
	SigningPayload []byte       `json:"-"`
}

// NewCredential creates a credential record for a freshly created account
func NewCredential(accountID AccountID, exchange ExchangeName, apiKey string, signKey *string) *Credential {
	return &Credential{
		AccountID: accountID,
		Exchange:  exchange,
		APIKey:    &apiKey,
		SignKey:   signKey,
	}
}

// PatchShape names which optional fields a CredentialPatch carries
type PatchShape int

const (
	PatchExchangeOnly PatchShape = iota
	PatchAPIKey
	PatchSignKey
	PatchBoth
)

func (s PatchShape) String() string {
	switch s {
	case PatchExchangeOnly:
		return "exchange_only"
	case PatchAPIKey:
		return "api_key"
	case PatchSignKey:
		return "sign_key"
	case PatchBoth:
		return "api_key+sign_key"
	default:
		return fmt.Sprintf("PatchShape(%d)", int(s))
	}
}

// CredentialPatch describes a partial update. Exchange is always written;
// APIKey and SignKey are written only when non-nil.
type CredentialPatch struct {
	AccountID AccountID
	Exchange  ExchangeName
	APIKey    *string
	SignKey   *string
}

// Shape classifies the patch by which optional fields are present
func (p CredentialPatch) Shape() PatchShape {
	switch {
	case p.APIKey != nil && p.SignKey != nil:
		return PatchBoth
	case p.APIKey != nil:
		return PatchAPIKey
	case p.SignKey != nil:
		return PatchSignKey
	default:
		return PatchExchangeOnly
	}
}
