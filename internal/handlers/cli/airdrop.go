package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/coinflip/internal/game"
	"github.com/gabapcia/coinflip/internal/ledger"
)

// airdropCommand returns the command that requests faucet funds.
//
// Usage example:
//
//	coinflip airdrop --sol 2
func airdropCommand(svc game.Service) *cli.Command {
	return &cli.Command{
		Name:        "airdrop",
		Description: "Request test funds for the player from the cluster faucet (devnet and testnet only).",
		Usage:       "Requests an airdrop. Defaults to 1 SOL.",
		Flags:       amountFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			var amount ledger.Lamports
			if c.IsSet("lamports") || c.IsSet("sol") {
				var err error
				if amount, err = amountFrom(c); err != nil {
					return err
				}
			}

			sig, err := svc.Airdrop(ctx, amount)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "airdrop to %s confirmed: %s\n", svc.Player(), sig)
			return nil
		},
	}
}
