package settlement

import (
	"context"

	"github.com/gabapcia/coinflip/internal/ledger"
)

// Signer produces the fee payer's signature over a transaction.
type Signer interface {
	// SignTransaction signs tx on behalf of tx.FeePayer and returns it in wire
	// format. The returned signature identifies the transaction on the ledger.
	//
	// It fails with ledger.ErrUserRejected when the key holder declined, or
	// ledger.ErrSignerUnavailable when no key for the fee payer is available.
	SignTransaction(ctx context.Context, tx ledger.Transaction) (ledger.SignedTransaction, error)
}

// Ledger is the subset of the ledger client used to submit transactions and
// observe their confirmation.
type Ledger interface {
	// SendTransaction broadcasts a signed transaction. An error means the
	// ledger did not accept it, so it will not execute.
	SendTransaction(ctx context.Context, tx ledger.SignedTransaction) (ledger.Signature, error)

	// ConfirmTransaction performs a single status check for sig.
	//
	// Returns:
	//   - nil when the transaction reached commitment.
	//   - ledger.ErrNotConfirmed when it has not (yet).
	//   - ledger.ErrTransactionFailed when it landed with an execution error.
	//   - any other error for transport failures.
	ConfirmTransaction(ctx context.Context, sig ledger.Signature, commitment ledger.Commitment) error
}
