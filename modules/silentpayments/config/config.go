package config

import "github.com/gaze-network/silentpayments-indexer/internal/postgres"

type Config struct {
	Datasource  string          `mapstructure:"datasource"`   // Datasource to fetch bitcoin data for Meta-Protocol e.g. `bitcoin-node`
	Database    string          `mapstructure:"database"`     // Database to store data.
	APIHandlers []string        `mapstructure:"api_handlers"` // List of API handlers to enable. (e.g. `http`)
	Postgres    postgres.Config `mapstructure:"postgres"`

	// PrevoutCacheSize is the number of previous transactions kept in memory while resolving input scripts.
	PrevoutCacheSize uint32 `mapstructure:"prevout_cache_size"`

	// EvaluateConcurrency bounds prevout lookups and evaluations running at once for a block.
	EvaluateConcurrency int `mapstructure:"evaluate_concurrency"`

	// DustLimit is the default minimum output value (in satoshis) for tweaks served by the API.
	DustLimit int64 `mapstructure:"dust_limit"`

	Archive ArchiveConfig `mapstructure:"archive"`
}

type ArchiveConfig struct {
	Bucket string `mapstructure:"bucket"`
	Region string `mapstructure:"region"`
	Prefix string `mapstructure:"prefix"`
}
