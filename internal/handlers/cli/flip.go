package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/coinflip/internal/coinflip"
	"github.com/gabapcia/coinflip/internal/game"
	"github.com/gabapcia/coinflip/internal/ledger"
	"github.com/gabapcia/coinflip/internal/settlement"
)

// ErrAmountRequired is returned when neither or both of --lamports and
// --sol are given.
var ErrAmountRequired = errors.New("exactly one of --lamports or --sol is required")

// amountFlags returns fresh --lamports and --sol flags.
func amountFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:  "lamports",
			Usage: "Amount in lamports",
		},
		&cli.StringFlag{
			Name:  "sol",
			Usage: "Amount in SOL, up to 9 decimal places (e.g., 0.1)",
		},
	}
}

// amountFrom reads the amount given either as --lamports or --sol.
func amountFrom(c *cli.Command) (ledger.Lamports, error) {
	switch {
	case c.IsSet("lamports") && c.IsSet("sol"):
		return 0, ErrAmountRequired
	case c.IsSet("lamports"):
		return ledger.Lamports(c.Uint64("lamports")), nil
	case c.IsSet("sol"):
		return ledger.ParseSOL(c.String("sol"))
	default:
		return 0, ErrAmountRequired
	}
}

// flipCommand returns the command that places a bet.
//
// Usage example:
//
//	coinflip flip --sol 0.1 --side heads
func flipCommand(svc game.Service) *cli.Command {
	return &cli.Command{
		Name:        "flip",
		Description: "Wager an amount on heads or tails and wait for the program to settle the bet.",
		Usage:       "Places a bet. Provide the amount with --lamports or --sol and the side with --side.",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "side",
				Usage:    "Side to bet on (heads or tails)",
				Required: true,
			},
		}, amountFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			side, err := coinflip.ParseSide(c.String("side"))
			if err != nil {
				return err
			}

			amount, err := amountFrom(c)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			result, err := svc.PlaceBet(ctx, amount, side)
			if errors.Is(err, settlement.ErrConfirmationTimeout) {
				fmt.Fprintf(w, "bet %s sent but not confirmed in time; check it later with `coinflip history`\n", result.Signature)
			}
			if err != nil {
				return err
			}

			printSettlement(w, amount, side, result)
			return nil
		},
	}
}
