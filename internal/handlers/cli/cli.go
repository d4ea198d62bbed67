package cli

import (
	"context"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/coinflip/internal/game"
	"github.com/gabapcia/coinflip/internal/gamestate"
)

// StateFollower streams game state reads until its context is done.
type StateFollower interface {
	Follow(ctx context.Context, interval time.Duration) <-chan gamestate.Event
}

// newApp assembles the coinflip command tree.
func newApp(svc game.Service, follower StateFollower) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "coinflip",
		Description:           "Command-line client for the on-chain coin-flip game.",
		Usage:                 "coinflip [command] [flags]",
		Commands: []*cli.Command{
			flipCommand(svc),
			stateCommand(svc, follower),
			historyCommand(svc),
			airdropCommand(svc),
		},
	}
}

// Run executes the coinflip CLI with the process arguments.
//
// Commands:
//
//   - `flip`: Places a bet and waits for its outcome.
//   - `state`: Prints the game state, optionally following it.
//   - `history`: Lists recent bets of an address.
//   - `airdrop`: Requests faucet funds for the player.
func Run(ctx context.Context, svc game.Service, follower StateFollower) error {
	return newApp(svc, follower).Run(ctx, os.Args)
}
