package solana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/coinflip/internal/ledger"
)

type sendConfig struct {
	Encoding            string            `json:"encoding"`
	SkipPreflight       bool              `json:"skipPreflight"`
	PreflightCommitment ledger.Commitment `json:"preflightCommitment,omitempty"`
}

// SendTransaction broadcasts a signed transaction. The node runs preflight
// simulation first, so program errors surface here as JSON-RPC errors.
func (c *client) SendTransaction(ctx context.Context, tx ledger.SignedTransaction) (ledger.Signature, error) {
	data, err := c.sendConn.Fetch(ctx, "sendTransaction", base64.StdEncoding.EncodeToString(tx.Payload), sendConfig{
		Encoding:            "base64",
		PreflightCommitment: c.commitment,
	})
	if err != nil {
		return ledger.Signature{}, err
	}

	var sig string
	if err := json.Unmarshal(data, &sig); err != nil {
		return ledger.Signature{}, err
	}

	return ledger.ParseSignature(sig)
}

type signatureStatusesConfig struct {
	SearchTransactionHistory bool `json:"searchTransactionHistory"`
}

// SignatureStatusResponse is an entry of getSignatureStatuses.
type SignatureStatusResponse struct {
	Slot               uint64          `json:"slot"`
	Confirmations      *uint64         `json:"confirmations"`
	Err                json.RawMessage `json:"err"`
	ConfirmationStatus string          `json:"confirmationStatus"`
}

// level is the commitment the status reports. Nodes that omit
// confirmationStatus signal a rooted transaction with null confirmations.
func (s SignatureStatusResponse) level() ledger.Commitment {
	if s.ConfirmationStatus == "" && s.Confirmations == nil {
		return ledger.CommitmentFinalized
	}

	return ledger.Commitment(s.ConfirmationStatus)
}

// ConfirmTransaction checks sig once. It returns nil when the transaction
// reached commitment, ledger.ErrNotConfirmed when it has not yet, and
// ledger.ErrTransactionFailed when it executed with an error.
func (c *client) ConfirmTransaction(ctx context.Context, sig ledger.Signature, commitment ledger.Commitment) error {
	data, err := c.conn.Fetch(ctx, "getSignatureStatuses", []string{sig.String()}, signatureStatusesConfig{
		SearchTransactionHistory: true,
	})
	if err != nil {
		return err
	}

	var result contextResult[[]*SignatureStatusResponse]
	if err := json.Unmarshal(data, &result); err != nil {
		return err
	}

	if len(result.Value) == 0 || result.Value[0] == nil {
		return ledger.ErrNotConfirmed
	}

	status := result.Value[0]
	if !isNull(status.Err) {
		return fmt.Errorf("%w: %s", ledger.ErrTransactionFailed, status.Err)
	}

	if level := status.level(); !level.Satisfies(commitment) {
		return fmt.Errorf("%w: at %q, waiting for %q", ledger.ErrNotConfirmed, level, commitment)
	}

	return nil
}

type signaturesConfig struct {
	Limit      int               `json:"limit"`
	Commitment ledger.Commitment `json:"commitment,omitempty"`
}

// SignatureResponse is an entry of getSignaturesForAddress.
type SignatureResponse struct {
	Signature string          `json:"signature"`
	Slot      uint64          `json:"slot"`
	Err       json.RawMessage `json:"err"`
	BlockTime *int64          `json:"blockTime"`
}

func (s SignatureResponse) toSignatureInfo() (ledger.SignatureInfo, error) {
	sig, err := ledger.ParseSignature(s.Signature)
	if err != nil {
		return ledger.SignatureInfo{}, err
	}

	return ledger.SignatureInfo{
		Signature: sig,
		Slot:      s.Slot,
		BlockTime: unixTime(s.BlockTime),
		Failed:    !isNull(s.Err),
	}, nil
}

// GetSignaturesForAddress lists up to limit signatures involving addr, most
// recent first.
func (c *client) GetSignaturesForAddress(ctx context.Context, addr ledger.Address, limit int) ([]ledger.SignatureInfo, error) {
	data, err := c.conn.Fetch(ctx, "getSignaturesForAddress", addr.String(), signaturesConfig{
		Limit:      limit,
		Commitment: c.readCommitment(),
	})
	if err != nil {
		return nil, err
	}

	var entries []SignatureResponse
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	infos := make([]ledger.SignatureInfo, len(entries))
	for i, e := range entries {
		if infos[i], err = e.toSignatureInfo(); err != nil {
			return nil, err
		}
	}

	return infos, nil
}

type transactionConfig struct {
	Encoding                       string            `json:"encoding"`
	MaxSupportedTransactionVersion int               `json:"maxSupportedTransactionVersion"`
	Commitment                     ledger.Commitment `json:"commitment,omitempty"`
}

// TransactionResponse is the subset of getTransaction the client reads.
type TransactionResponse struct {
	Slot      uint64 `json:"slot"`
	BlockTime *int64 `json:"blockTime"`
	Meta      *struct {
		Err          json.RawMessage   `json:"err"`
		PreBalances  []ledger.Lamports `json:"preBalances"`
		PostBalances []ledger.Lamports `json:"postBalances"`
		LogMessages  []string          `json:"logMessages"`
	} `json:"meta"`
}

func (t TransactionResponse) toReceipt(sig ledger.Signature) *ledger.Receipt {
	receipt := &ledger.Receipt{
		Signature: sig,
		Slot:      t.Slot,
		BlockTime: unixTime(t.BlockTime),
	}

	if t.Meta != nil {
		receipt.LogMessages = t.Meta.LogMessages
		receipt.PreBalances = t.Meta.PreBalances
		receipt.PostBalances = t.Meta.PostBalances
		receipt.Failed = !isNull(t.Meta.Err)
	}

	return receipt
}

// GetTransaction returns the receipt of sig, or ledger.ErrTransactionNotFound.
func (c *client) GetTransaction(ctx context.Context, sig ledger.Signature) (*ledger.Receipt, error) {
	data, err := c.conn.Fetch(ctx, "getTransaction", sig.String(), transactionConfig{
		Encoding:                       "json",
		MaxSupportedTransactionVersion: 0,
		Commitment:                     c.readCommitment(),
	})
	if err != nil {
		return nil, err
	}

	if isNull(data) {
		return nil, fmt.Errorf("%w: %s", ledger.ErrTransactionNotFound, sig)
	}

	var tx TransactionResponse
	if err := json.Unmarshal(data, &tx); err != nil {
		return nil, err
	}

	return tx.toReceipt(sig), nil
}

// RequestAirdrop asks the cluster faucet to credit amount to addr. Only
// devnet and testnet nodes serve it.
func (c *client) RequestAirdrop(ctx context.Context, addr ledger.Address, amount ledger.Lamports) (ledger.Signature, error) {
	data, err := c.sendConn.Fetch(ctx, "requestAirdrop", addr.String(), uint64(amount), commitmentConfig{Commitment: c.commitment})
	if err != nil {
		return ledger.Signature{}, err
	}

	var sig string
	if err := json.Unmarshal(data, &sig); err != nil {
		return ledger.Signature{}, err
	}

	return ledger.ParseSignature(sig)
}

func unixTime(sec *int64) *time.Time {
	if sec == nil {
		return nil
	}

	t := time.Unix(*sec, 0)
	return &t
}
