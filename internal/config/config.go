// Package config loads the coin-flip client configuration from COINFLIP_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/coinflip/internal/game"
	"github.com/gabapcia/coinflip/internal/ledger"
	"github.com/gabapcia/coinflip/internal/pkg/validator"
)

// Prefix is the environment variable prefix of every setting.
const Prefix = "COINFLIP"

type (
	// Cluster locates the Solana RPC node.
	Cluster struct {
		Endpoint       string        `envconfig:"ENDPOINT" default:"https://api.devnet.solana.com" validate:"required,url"`
		RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s" validate:"gt=0"`
		RetryMax       int           `envconfig:"RETRY_MAX" default:"2" validate:"min=0,max=10"`
	}

	// Program identifies the deployed coin-flip program.
	Program struct {
		ID           string `envconfig:"ID" validate:"required,pubkey"`
		StateAccount string `envconfig:"STATE_ACCOUNT" validate:"required,pubkey"`
	}

	// Settlement tunes submission and confirmation.
	Settlement struct {
		Commitment     string        `envconfig:"COMMITMENT" default:"confirmed" validate:"oneof=processed confirmed finalized"`
		ConfirmTimeout time.Duration `envconfig:"CONFIRM_TIMEOUT" default:"30s" validate:"gt=0"`
		PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"500ms" validate:"gt=0"`
	}

	// History tunes bet history reconstruction.
	History struct {
		PageSize int `envconfig:"PAGE_SIZE" default:"10" validate:"min=1,max=1000"`
	}

	// Wallet locates the player's keypair.
	Wallet struct {
		KeypairPath string `envconfig:"KEYPAIR_PATH" default:"~/.config/solana/id.json" validate:"required"`
	}

	// Redis enables the shared in-flight guard. An empty Addr keeps the
	// guard in process.
	Redis struct {
		Addr     string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" default:"0" validate:"min=0"`
	}

	// Telemetry toggles the OTLP exporters. Exporter endpoints follow the
	// standard OTEL_EXPORTER_OTLP_* variables.
	Telemetry struct {
		Enabled     bool   `envconfig:"ENABLED" default:"false"`
		ServiceName string `envconfig:"SERVICE_NAME" default:"coinflip" validate:"required"`
	}

	// Config is the complete client configuration.
	Config struct {
		LogLevel   string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
		Cluster    Cluster
		Program    Program
		Settlement Settlement
		History    History
		Wallet     Wallet
		Redis      Redis
		Telemetry  Telemetry
	}
)

// Load reads the configuration from the environment and validates it. A
// leading ~ in the keypair path is expanded to the home directory.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	path, err := expandHome(cfg.Wallet.KeypairPath)
	if err != nil {
		return Config{}, err
	}
	cfg.Wallet.KeypairPath = path

	return cfg, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Game converts the identifiers into a game.Config for player.
func (c Config) Game(player ledger.Address) (game.Config, error) {
	programID, err := ledger.ParseAddress(c.Program.ID)
	if err != nil {
		return game.Config{}, fmt.Errorf("program id: %w", err)
	}

	stateAccount, err := ledger.ParseAddress(c.Program.StateAccount)
	if err != nil {
		return game.Config{}, fmt.Errorf("state account: %w", err)
	}

	commitment, err := ledger.ParseCommitment(c.Settlement.Commitment)
	if err != nil {
		return game.Config{}, err
	}

	return game.Config{
		ProgramID:    programID,
		StateAccount: stateAccount,
		Player:       player,
		Commitment:   commitment,
		PageSize:     c.History.PageSize,
	}, nil
}
