package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/coinflip/internal/game"
	"github.com/gabapcia/coinflip/internal/ledger"
)

// historyCommand returns the command that lists past bets.
//
// Usage example:
//
//	coinflip history --address 9xQe... --limit 25
func historyCommand(svc game.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Rebuild recent bets of an address from its transaction receipts.",
		Usage:       "Lists recent bets. Defaults to the configured player and page size.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address whose bets are listed (default: the player)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Number of recent transactions to inspect (1..1000)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var address ledger.Address
			if s := c.String("address"); s != "" {
				var err error
				if address, err = ledger.ParseAddress(s); err != nil {
					return err
				}
			}

			records, err := svc.History(ctx, address, int(c.Int("limit")))
			if err != nil {
				return err
			}

			return printHistory(c.Root().Writer, records)
		},
	}
}
