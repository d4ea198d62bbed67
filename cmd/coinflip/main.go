package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabapcia/coinflip/internal/bethistory"
	"github.com/gabapcia/coinflip/internal/config"
	"github.com/gabapcia/coinflip/internal/game"
	"github.com/gabapcia/coinflip/internal/gamestate"
	"github.com/gabapcia/coinflip/internal/handlers/cli"
	"github.com/gabapcia/coinflip/internal/infra/blockchain/solana"
	"github.com/gabapcia/coinflip/internal/infra/signer/keypair"
	"github.com/gabapcia/coinflip/internal/infra/storage/redis"
	"github.com/gabapcia/coinflip/internal/ledger"
	"github.com/gabapcia/coinflip/internal/pkg/logger"
	"github.com/gabapcia/coinflip/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/coinflip/internal/pkg/transport/http"
	"github.com/gabapcia/coinflip/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/coinflip/internal/settlement"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "coinflip:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() { err = errors.Join(err, shutdown(context.WithoutCancel(ctx))) }()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	signer, err := keypair.Load(cfg.Wallet.KeypairPath)
	if err != nil {
		return err
	}

	gameCfg, err := cfg.Game(signer.Address())
	if err != nil {
		return err
	}

	chain := newLedgerClient(cfg.Cluster, gameCfg.Commitment)

	guard, closeGuard, err := newInFlightGuard(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeGuard()

	settler := settlement.New(signer, chain,
		settlement.WithConfirmTimeout(cfg.Settlement.ConfirmTimeout),
		settlement.WithPollInterval(cfg.Settlement.PollInterval),
		settlement.WithInFlightGuard(guard),
	)

	tracker := gamestate.NewTracker(chain, gameCfg.StateAccount)
	history := bethistory.New(chain)

	svc := game.New(gameCfg, chain, settler, tracker, history)
	return cli.Run(ctx, svc, tracker)
}

// newLedgerClient builds the Solana client. Reads retry at the transport
// level; submissions go through a connection that never retries.
func newLedgerClient(cluster config.Cluster, commitment ledger.Commitment) interface {
	settlement.Ledger
	gamestate.AccountFetcher
	bethistory.Ledger
	game.Ledger
} {
	readConn := jsonrpc.NewClient(cluster.Endpoint, httptransport.NewClient(
		httptransport.WithTimeout(cluster.RequestTimeout),
		httptransport.WithRetryMax(cluster.RetryMax),
	))

	sendConn := jsonrpc.NewClient(cluster.Endpoint, httptransport.NewClient(
		httptransport.WithTimeout(cluster.RequestTimeout),
		httptransport.WithRetryMax(0),
	))

	return solana.NewClient(readConn,
		solana.WithSendConn(sendConn),
		solana.WithCommitment(commitment),
	)
}

// newInFlightGuard returns the Redis guard when Redis is configured and the
// in-process guard otherwise.
func newInFlightGuard(ctx context.Context, cfg config.Redis) (settlement.InFlightGuard, func(), error) {
	if cfg.Addr == "" {
		return settlement.NewMemoryGuard(), func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg.Addr, cfg.Username, cfg.Password, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, func() { _ = client.Close() }, nil
}
