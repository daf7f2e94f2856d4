package main

import "flag"

// config holds the resolved command-line configuration for a single mldsa
// invocation.
type config struct {
	Level      int    // 44, 65, or 87
	Op         string // keygen, sign, verify
	SeedPath   string
	KeyPath    string
	MessagePath string
	SigPath    string
	Context    string
	Verbosity  int
}

func defaultConfig() config {
	return config{
		Level:     65,
		Op:        "keygen",
		Verbosity: 3,
	}
}

// newFlagSet creates a flag.FlagSet that binds all CLI flags to cfg. The
// FlagSet uses ContinueOnError so callers control the error handling
// behavior, following the teacher's cmd/eth2030 convention.
func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet("mldsa", flag.ContinueOnError)
	fs.IntVar(&cfg.Level, "level", cfg.Level, "ML-DSA security level (44, 65, 87)")
	fs.StringVar(&cfg.Op, "op", cfg.Op, "operation to perform (keygen, sign, verify)")
	fs.StringVar(&cfg.SeedPath, "seed", cfg.SeedPath, "path to a 32-byte seed file (keygen); random if omitted")
	fs.StringVar(&cfg.KeyPath, "key", cfg.KeyPath, "path to a key file (private key for sign, public key for verify)")
	fs.StringVar(&cfg.MessagePath, "message", cfg.MessagePath, "path to the message file")
	fs.StringVar(&cfg.SigPath, "sig", cfg.SigPath, "path to the signature file (output for sign, input for verify)")
	fs.StringVar(&cfg.Context, "context", cfg.Context, "optional context string, at most 255 bytes")
	fs.IntVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "log level 0-5 (0-1=errors only, 2=warn, 3=info, 4-5=debug)")
	return fs
}
