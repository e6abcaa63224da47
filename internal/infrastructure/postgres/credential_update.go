package postgres

import "github.com/sungminna/exchange-credentials/internal/domain/model"

type updateStatement struct {
	query string
	args  func(p model.CredentialPatch) []any
}

// partialUpdateStatements holds one complete statement per patch shape.
// exchange is always rewritten; the record is located by uid alone.
var partialUpdateStatements = map[model.PatchShape]updateStatement{
	model.PatchExchangeOnly: {
		query: `
			UPDATE accounts
			SET exchange = $1
			WHERE uid = $2
			RETURNING uid
		`,
		args: func(p model.CredentialPatch) []any {
			return []any{p.Exchange.String(), string(p.AccountID)}
		},
	},
	model.PatchAPIKey: {
		query: `
			UPDATE accounts
			SET exchange = $1, api_key = $2
			WHERE uid = $3
			RETURNING uid
		`,
		args: func(p model.CredentialPatch) []any {
			return []any{p.Exchange.String(), *p.APIKey, string(p.AccountID)}
		},
	},
	model.PatchSignKey: {
		query: `
			UPDATE accounts
			SET exchange = $1, sign_key = $2
			WHERE uid = $3
			RETURNING uid
		`,
		args: func(p model.CredentialPatch) []any {
			return []any{p.Exchange.String(), *p.SignKey, string(p.AccountID)}
		},
	},
	model.PatchBoth: {
		query: `
			UPDATE accounts
			SET exchange = $1, api_key = $2, sign_key = $3
			WHERE uid = $4
			RETURNING uid
		`,
		args: func(p model.CredentialPatch) []any {
			return []any{p.Exchange.String(), *p.APIKey, *p.SignKey, string(p.AccountID)}
		},
	},
}
