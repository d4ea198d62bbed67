package coinflip

import (
	"errors"

	"github.com/gabapcia/coinflip/internal/ledger"
)

// ErrInvalidAmount is returned when a bet amount is zero.
var ErrInvalidAmount = errors.New("bet amount must be greater than zero")

// ValidateAmount checks that amount can be wagered.
func ValidateAmount(amount ledger.Lamports) error {
	if amount == 0 {
		return ErrInvalidAmount
	}

	return nil
}

// BuildBetTransaction assembles the single-instruction transaction that
// places a bet. The account list follows the program's index convention:
// player (signer, writable), state account (writable), system program
// (read-only). The player is the fee payer.
//
// BuildBetTransaction performs no network access; the caller supplies a
// fresh blockhash.
func BuildBetTransaction(
	player, stateAccount, programID ledger.Address,
	amount ledger.Lamports,
	side Side,
	freshness ledger.Blockhash,
) (ledger.Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return ledger.Transaction{}, err
	}

	return ledger.Transaction{
		FeePayer: player,
		Instructions: []ledger.Instruction{{
			ProgramID: programID,
			Accounts: []ledger.AccountMeta{
				{Address: player, IsSigner: true, IsWritable: true},
				{Address: stateAccount, IsWritable: true},
				{Address: ledger.SystemProgramID},
			},
			Data: EncodeFlipInstruction(amount, side),
		}},
		FreshnessToken: freshness,
	}, nil
}
