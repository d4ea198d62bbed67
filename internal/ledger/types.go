// Package ledger holds the types shared by every component that talks to the
// Solana ledger: addresses, signatures, freshness tokens, lamport amounts,
// instructions and transactions, plus the sentinel errors that ledger client
// and signer implementations use to report well-known conditions.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
)

var (
	// ErrAccountNotFound is returned by account fetchers when the requested
	// account does not exist on the ledger.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when the ledger has no receipt for a
	// signature at the requested commitment.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotConfirmed is returned by a single confirmation check when the
	// transaction has not reached the requested commitment yet.
	ErrNotConfirmed = errors.New("transaction not confirmed")

	// ErrTransactionFailed is returned when the ledger reports that the
	// transaction was executed and failed.
	ErrTransactionFailed = errors.New("transaction failed on ledger")

	// ErrUserRejected is returned by signers when the key holder declined to sign.
	ErrUserRejected = errors.New("user rejected the transaction")

	// ErrSignerUnavailable is returned by signers that cannot sign for the
	// requested fee payer.
	ErrSignerUnavailable = errors.New("signer unavailable")
)

type (
	// Address is a 32-byte public identifier of an account, program or party.
	Address = solana.PublicKey

	// Signature is the 64-byte identifier of a submitted transaction.
	Signature = solana.Signature

	// Blockhash is the freshness token a transaction must carry. The ledger
	// rejects transactions whose blockhash is too old.
	Blockhash = solana.Hash
)

// SystemProgramID is the address of the native system program.
var SystemProgramID = solana.SystemProgramID

// ParseAddress decodes a base58 encoded address.
func ParseAddress(s string) (Address, error) {
	addr, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}

	return addr, nil
}

// ParseSignature decodes a base58 encoded transaction signature.
func ParseSignature(s string) (Signature, error) {
	sig, err := solana.SignatureFromBase58(s)
	if err != nil {
		return Signature{}, fmt.Errorf("invalid signature %q: %w", s, err)
	}

	return sig, nil
}

// ParseBlockhash decodes a base58 encoded blockhash.
func ParseBlockhash(s string) (Blockhash, error) {
	hash, err := solana.HashFromBase58(s)
	if err != nil {
		return Blockhash{}, fmt.Errorf("invalid blockhash %q: %w", s, err)
	}

	return hash, nil
}

// AccountMeta references an account passed to an instruction, together with
// the permissions the program needs on it.
type AccountMeta struct {
	Address    Address
	IsSigner   bool
	IsWritable bool
}

// Instruction is a single program call. The order of Accounts must match the
// account index convention of the target program.
type Instruction struct {
	ProgramID Address
	Accounts  []AccountMeta
	Data      []byte
}

// Transaction is an ordered list of instructions bound to a fee payer and a
// freshness token. A transaction is built for exactly one submission.
type Transaction struct {
	FeePayer       Address
	Instructions   []Instruction
	FreshnessToken Blockhash
}

// Compile converts the transaction into its solana-go representation, ready
// to be signed and serialized.
func (t Transaction) Compile() (*solana.Transaction, error) {
	if len(t.Instructions) == 0 {
		return nil, errors.New("transaction has no instructions")
	}

	instructions := make([]solana.Instruction, len(t.Instructions))
	for i, ix := range t.Instructions {
		accounts := make(solana.AccountMetaSlice, len(ix.Accounts))
		for j, acc := range ix.Accounts {
			accounts[j] = &solana.AccountMeta{
				PublicKey:  acc.Address,
				IsSigner:   acc.IsSigner,
				IsWritable: acc.IsWritable,
			}
		}

		instructions[i] = solana.NewInstruction(ix.ProgramID, accounts, ix.Data)
	}

	return solana.NewTransaction(instructions, t.FreshnessToken, solana.TransactionPayer(t.FeePayer))
}

// SignedTransaction is a transaction serialized in wire format together with
// the fee payer's signature, which doubles as the transaction identifier.
type SignedTransaction struct {
	Signature Signature
	Payload   []byte
}

// SignatureInfo is an entry of the signature listing of an address.
type SignatureInfo struct {
	Signature Signature
	Slot      uint64
	BlockTime *time.Time // nil when the ledger did not record a block time
	Failed    bool
}

// Receipt is the subset of a confirmed transaction the client relies on.
type Receipt struct {
	Signature    Signature
	Slot         uint64
	BlockTime    *time.Time
	LogMessages  []string
	PreBalances  []Lamports
	PostBalances []Lamports
	Failed       bool
}
