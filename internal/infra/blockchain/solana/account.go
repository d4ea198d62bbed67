package solana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/coinflip/internal/ledger"
)

type accountInfoConfig struct {
	Encoding   string            `json:"encoding"`
	Commitment ledger.Commitment `json:"commitment,omitempty"`
}

// AccountResponse is the account object returned by getAccountInfo with
// base64 encoding. Data holds the payload and its encoding name.
type AccountResponse struct {
	Lamports   ledger.Lamports `json:"lamports"`
	Owner      string          `json:"owner"`
	Data       [2]string       `json:"data"`
	Executable bool            `json:"executable"`
}

// bytes decodes the account payload.
func (a AccountResponse) bytes() ([]byte, error) {
	if a.Data[1] != "base64" {
		return nil, fmt.Errorf("unexpected account encoding %q", a.Data[1])
	}

	return base64.StdEncoding.DecodeString(a.Data[0])
}

// GetAccount returns the raw data of addr, or ledger.ErrAccountNotFound.
func (c *client) GetAccount(ctx context.Context, addr ledger.Address) ([]byte, error) {
	data, err := c.conn.Fetch(ctx, "getAccountInfo", addr.String(), accountInfoConfig{
		Encoding:   "base64",
		Commitment: c.commitment,
	})
	if err != nil {
		return nil, err
	}

	var result contextResult[json.RawMessage]
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	if isNull(result.Value) {
		return nil, fmt.Errorf("%w: %s", ledger.ErrAccountNotFound, addr)
	}

	var account AccountResponse
	if err := json.Unmarshal(result.Value, &account); err != nil {
		return nil, err
	}

	return account.bytes()
}

// BlockhashResponse is the value of getLatestBlockhash.
type BlockhashResponse struct {
	Blockhash            string `json:"blockhash"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
}

// GetLatestBlockhash returns a blockhash to bind a new transaction to.
func (c *client) GetLatestBlockhash(ctx context.Context, commitment ledger.Commitment) (ledger.Blockhash, error) {
	data, err := c.conn.Fetch(ctx, "getLatestBlockhash", commitmentConfig{Commitment: commitment})
	if err != nil {
		return ledger.Blockhash{}, err
	}

	var result contextResult[BlockhashResponse]
	if err := json.Unmarshal(data, &result); err != nil {
		return ledger.Blockhash{}, err
	}

	return ledger.ParseBlockhash(result.Value.Blockhash)
}
