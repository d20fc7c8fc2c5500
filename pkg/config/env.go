// Package config defines environment configuration structs for the library's
// tunable defaults.
package config

// LoggerEnvConfig configures the global logger.
type LoggerEnvConfig struct {
	LogLevel string `env:"LOG_LEVEL,default=info"`
}

// BootstrapEnvConfig holds default bootstrap settings picked up by
// bootstrap.NewPlan.
type BootstrapEnvConfig struct {
	Replicates int     `env:"BOOT_REPLICATES,default=1000"`
	Seed       uint64  `env:"BOOT_SEED,default=1"`
	Confidence float64 `env:"BOOT_CONFIDENCE,default=0.95"`
}
