// Command mldsa generates ML-DSA key pairs and signs/verifies messages from
// the command line.
//
// Usage:
//
//	mldsa -op keygen  -level 65 -key priv.key
//	mldsa -op sign    -level 65 -key priv.key -message msg.bin -sig sig.bin
//	mldsa -op verify  -level 65 -key priv.key.pub -message msg.bin -sig sig.bin
//
// Flags:
//
//	-level      ML-DSA security level: 44, 65, or 87 (default 65)
//	-op         Operation: keygen, sign, verify (default keygen)
//	-seed       Seed file for keygen; random if omitted
//	-key        Key file (private key for sign, public key for verify)
//	-message    Message file
//	-sig        Signature file (written by sign, read by verify)
//	-context    Optional context string
//	-verbosity  Log level 0-5 (default 3)
package main

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"

	"github.com/eth2030/mldsa-core"
	"github.com/eth2030/mldsa-core/log"
)

// verbosityToLevel maps the CLI's 0-5 verbosity scale to an slog.Level,
// following the teacher's cmd/eth2030 verbosity convention.
func verbosityToLevel(v int) slog.Level {
	switch {
	case v <= 1:
		return slog.LevelError
	case v == 2:
		return slog.LevelWarn
	case v == 3:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. It accepts CLI
// arguments without the program name so it can be tested in isolation.
func run(args []string) int {
	cfg := defaultConfig()
	fs := newFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(verbosityToLevel(cfg.Verbosity)).Module("cmd")

	params, err := paramsForLevel(cfg.Level)
	if err != nil {
		logger.Error("invalid level", "level", cfg.Level, "err", err)
		return 1
	}

	switch cfg.Op {
	case "keygen":
		return runKeygen(logger, params, cfg)
	case "sign":
		return runSign(logger, params, cfg)
	case "verify":
		return runVerify(logger, params, cfg)
	default:
		logger.Error("unknown operation", "op", cfg.Op)
		return 2
	}
}

func paramsForLevel(level int) (*mldsa.Params, error) {
	switch level {
	case 44:
		return mldsa.MLDSA44, nil
	case 65:
		return mldsa.MLDSA65, nil
	case 87:
		return mldsa.MLDSA87, nil
	default:
		return nil, fmt.Errorf("level must be 44, 65, or 87, got %d", level)
	}
}

func runKeygen(logger *log.Logger, params *mldsa.Params, cfg config) int {
	seed := make([]byte, mldsa.SeedSize)
	if cfg.SeedPath != "" {
		buf, err := os.ReadFile(cfg.SeedPath)
		if err != nil {
			logger.Error("reading seed", "err", err)
			return 1
		}
		if len(buf) != mldsa.SeedSize {
			logger.Error("seed has wrong length", "got", len(buf), "want", mldsa.SeedSize)
			return 1
		}
		seed = buf
	} else if _, err := rand.Read(seed); err != nil {
		logger.Error("generating random seed", "err", err)
		return 1
	}

	pub, priv, err := mldsa.Keygen(params, seed)
	if err != nil {
		logger.Error("keygen failed", "err", err)
		return 1
	}

	logger.Info("keygen complete", "level", params.Name,
		"pubkeySize", len(pub), "privkeySize", len(priv))

	if cfg.KeyPath == "" {
		logger.Error("missing -key output path")
		return 2
	}
	if err := os.WriteFile(cfg.KeyPath, priv, 0600); err != nil {
		logger.Error("writing private key", "err", err)
		return 1
	}
	if err := os.WriteFile(cfg.KeyPath+".pub", pub, 0644); err != nil {
		logger.Error("writing public key", "err", err)
		return 1
	}
	return 0
}

func runSign(logger *log.Logger, params *mldsa.Params, cfg config) int {
	sk, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		logger.Error("reading private key", "err", err)
		return 1
	}
	msg, err := os.ReadFile(cfg.MessagePath)
	if err != nil {
		logger.Error("reading message", "err", err)
		return 1
	}

	sig, err := mldsa.Sign(params, sk, msg, []byte(cfg.Context))
	if err != nil {
		logger.Error("sign failed", "err", err)
		return 1
	}

	logger.Info("signed message", "level", params.Name, "sigSize", len(sig))

	if err := os.WriteFile(cfg.SigPath, sig, 0644); err != nil {
		logger.Error("writing signature", "err", err)
		return 1
	}
	return 0
}

func runVerify(logger *log.Logger, params *mldsa.Params, cfg config) int {
	pk, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		logger.Error("reading public key", "err", err)
		return 1
	}
	msg, err := os.ReadFile(cfg.MessagePath)
	if err != nil {
		logger.Error("reading message", "err", err)
		return 1
	}
	sig, err := os.ReadFile(cfg.SigPath)
	if err != nil {
		logger.Error("reading signature", "err", err)
		return 1
	}

	ok := mldsa.Verify(params, pk, sig, msg, []byte(cfg.Context))
	logger.Info("verification result", "level", params.Name, "valid", ok)

	if !ok {
		return 1
	}
	return 0
}
