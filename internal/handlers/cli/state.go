package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/coinflip/internal/game"
	"github.com/gabapcia/coinflip/internal/pkg/logger"
)

// stateCommand returns the command that prints the game state.
//
// Usage example:
//
//	coinflip state --follow --interval 10s
//
// With --follow it keeps printing until interrupted (SIGINT or SIGTERM).
func stateCommand(svc game.Service, follower StateFollower) *cli.Command {
	return &cli.Command{
		Name:        "state",
		Description: "Read the game state account: whether it is initialized, the number of bets and the total wagered.",
		Usage:       "Prints the game state once, or repeatedly with --follow.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "follow",
				Usage: "Keep polling the state until interrupted",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Polling interval used with --follow",
				Value: 5 * time.Second,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			w := c.Root().Writer

			if !c.Bool("follow") {
				state, err := svc.State(ctx)
				if err != nil {
					return err
				}

				printState(w, state)
				return nil
			}

			interval := c.Duration("interval")
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			for event := range follower.Follow(ctx, interval) {
				if event.Err != nil {
					logger.Warn(ctx, "state read failed", "error", event.Err)
					continue
				}

				printState(w, event.State)
			}

			return nil
		},
	}
}
