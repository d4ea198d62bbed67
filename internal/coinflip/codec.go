// Package coinflip implements the client side of the coin-flip program
// protocol: the binary layout of the place-bet instruction and of the game
// state account, the construction of a bet transaction, and the mapping of
// program log lines to a bet outcome.
package coinflip

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	bin "github.com/gagliardetto/binary"

	"github.com/gabapcia/coinflip/internal/ledger"
)

const (
	// TagPlaceBet is the instruction tag the program dispatches the bet handler on.
	TagPlaceBet uint8 = 1

	// FlipInstructionSize is the encoded size of a place-bet instruction.
	FlipInstructionSize = 10

	// StateSize is the minimum size of the game state account payload.
	StateSize = 17
)

var (
	// ErrTooShort is returned when a payload is shorter than its fixed layout.
	ErrTooShort = errors.New("payload too short")

	// ErrUnknownInstruction is returned when an instruction payload carries a
	// tag other than TagPlaceBet.
	ErrUnknownInstruction = errors.New("unknown instruction tag")

	// ErrInvalidSide is returned when a side name cannot be parsed.
	ErrInvalidSide = errors.New("invalid side")
)

// Side is the face of the coin the player bets on.
type Side uint8

const (
	Tails Side = 0
	Heads Side = 1
)

// String returns the lowercase name of the side.
func (s Side) String() string {
	if s == Heads {
		return "heads"
	}

	return "tails"
}

// ParseSide accepts "heads" or "tails", case-insensitively.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heads":
		return Heads, nil
	case "tails":
		return Tails, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected heads or tails)", ErrInvalidSide, s)
	}
}

// FlipInstruction is the decoded form of a place-bet instruction payload.
type FlipInstruction struct {
	Tag    uint8
	Amount ledger.Lamports
	Side   Side
}

// State is a point-in-time snapshot of the program's aggregate counters.
type State struct {
	IsInitialized      bool
	TotalBets          uint64
	TotalAmountWagered ledger.Lamports
}

// flipInstructionLayout and stateLayout mirror the program's fixed layouts.
// Fields are serialized in declaration order, integers little-endian.
type flipInstructionLayout struct {
	Tag    uint8
	Amount uint64
	Side   uint8
}

type stateLayout struct {
	IsInitialized      uint8
	TotalBets          uint64
	TotalAmountWagered uint64
}

// EncodeFlipInstruction serializes a place-bet instruction as
// tag (u8) || amount (u64 LE) || side (u8). The result is always
// FlipInstructionSize bytes long.
func EncodeFlipInstruction(amount ledger.Lamports, side Side) []byte {
	var side8 uint8
	if side == Heads {
		side8 = 1
	}

	buf := bytes.NewBuffer(make([]byte, 0, FlipInstructionSize))
	// Encoding fixed-size integers into a bytes.Buffer cannot fail.
	_ = bin.NewBorshEncoder(buf).Encode(flipInstructionLayout{
		Tag:    TagPlaceBet,
		Amount: uint64(amount),
		Side:   side8,
	})

	return buf.Bytes()
}

// DecodeFlipInstruction parses a place-bet instruction payload. Any nonzero
// side byte decodes as Heads.
func DecodeFlipInstruction(data []byte) (FlipInstruction, error) {
	if len(data) < FlipInstructionSize {
		return FlipInstruction{}, fmt.Errorf("%w: instruction needs %d bytes, got %d", ErrTooShort, FlipInstructionSize, len(data))
	}

	var layout flipInstructionLayout
	if err := bin.NewBorshDecoder(data).Decode(&layout); err != nil {
		return FlipInstruction{}, fmt.Errorf("decode instruction: %w", err)
	}

	if layout.Tag != TagPlaceBet {
		return FlipInstruction{}, fmt.Errorf("%w: %d", ErrUnknownInstruction, layout.Tag)
	}

	side := Tails
	if layout.Side != 0 {
		side = Heads
	}

	return FlipInstruction{
		Tag:    layout.Tag,
		Amount: ledger.Lamports(layout.Amount),
		Side:   side,
	}, nil
}

// DecodeState parses the game state account payload laid out as
// isInitialized (u8, nonzero is true) || totalBets (u64 LE) ||
// totalAmountWagered (u64 LE). Trailing bytes are ignored and no range
// validation is applied to the counters.
func DecodeState(raw []byte) (State, error) {
	if len(raw) < StateSize {
		return State{}, fmt.Errorf("%w: state needs %d bytes, got %d", ErrTooShort, StateSize, len(raw))
	}

	var layout stateLayout
	if err := bin.NewBorshDecoder(raw[:StateSize]).Decode(&layout); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}

	return State{
		IsInitialized:      layout.IsInitialized != 0,
		TotalBets:          layout.TotalBets,
		TotalAmountWagered: ledger.Lamports(layout.TotalAmountWagered),
	}, nil
}
