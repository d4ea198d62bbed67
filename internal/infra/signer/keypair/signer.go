// Package keypair signs transactions with a key held in a solana-keygen
// keypair file.
package keypair

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/gabapcia/coinflip/internal/ledger"
	"github.com/gabapcia/coinflip/internal/settlement"
)

type signer struct {
	key solana.PrivateKey
}

var _ settlement.Signer = (*signer)(nil)

// Address returns the public key of the held keypair.
func (s *signer) Address() ledger.Address {
	return s.key.PublicKey()
}

// SignTransaction compiles tx, signs it as its fee payer and serializes it.
// It fails with ledger.ErrSignerUnavailable when tx is paid by another key.
func (s *signer) SignTransaction(ctx context.Context, tx ledger.Transaction) (ledger.SignedTransaction, error) {
	if err := ctx.Err(); err != nil {
		return ledger.SignedTransaction{}, err
	}

	owner := s.key.PublicKey()
	if !tx.FeePayer.Equals(owner) {
		return ledger.SignedTransaction{}, fmt.Errorf("%w: fee payer %s is not %s", ledger.ErrSignerUnavailable, tx.FeePayer, owner)
	}

	compiled, err := tx.Compile()
	if err != nil {
		return ledger.SignedTransaction{}, fmt.Errorf("compile transaction: %w", err)
	}

	_, err = compiled.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(owner) {
			return &s.key
		}
		return nil
	})
	if err != nil {
		return ledger.SignedTransaction{}, fmt.Errorf("%w: %w", ledger.ErrSignerUnavailable, err)
	}

	payload, err := compiled.MarshalBinary()
	if err != nil {
		return ledger.SignedTransaction{}, fmt.Errorf("serialize transaction: %w", err)
	}

	return ledger.SignedTransaction{
		Signature: compiled.Signatures[0],
		Payload:   payload,
	}, nil
}

// New returns a signer holding key.
func New(key solana.PrivateKey) *signer {
	return &signer{key: key}
}

// Load reads a solana-keygen JSON keypair file.
func Load(path string) (*signer, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: load keypair %s: %w", ledger.ErrSignerUnavailable, path, err)
	}

	return New(key), nil
}
