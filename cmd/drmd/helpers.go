// Shared helpers for drmd CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dukaforge/drmd/internal/paths"
	"github.com/dukaforge/drmd/internal/session"
	"github.com/dukaforge/drmd/pkg/types"
)

// newLogger builds the process logger. Lenient import/export
// diagnostics are warnings; --verbose surfaces them, the default level
// keeps the CLI quiet except for errors.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// sessionName applies the flag > config > default precedence.
func sessionName() string {
	if flagSession != "" {
		return flagSession
	}
	if configSession != "" {
		return configSession
	}
	return defaultSession
}

// openStore resolves the data directory and opens the session store.
// The caller must defer store.Close().
func openStore() (*session.Store, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	store, err := session.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return store, nil
}

// loadCertificate returns the current session's certificate, or a fresh
// one when the session has not been saved yet.
func loadCertificate(store *session.Store) (*types.Certificate, error) {
	cert, err := store.Load(sessionName())
	if errors.Is(err, session.ErrNotFound) {
		return types.NewCertificate(), nil
	}
	return cert, err
}

// withCertificate loads the session certificate, applies fn, and saves
// the result. fn errors are user errors and leave the session
// untouched.
func withCertificate(fn func(cert *types.Certificate) error) error {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
	defer store.Close()

	cert, err := loadCertificate(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}

	if err := fn(cert); err != nil {
		return err
	}

	if err := store.Save(sessionName(), cert); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
	return nil
}

// readCertificate loads the session certificate for a read-only
// command; fn runs without a save.
func readCertificate(fn func(cert *types.Certificate) error) error {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
	defer store.Close()

	cert, err := loadCertificate(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
	return fn(cert)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// indexArg parses a zero-based list index argument.
func indexArg(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("index %q is not a number", s)
	}
	return i, nil
}

// floatFlag parses an optional decimal flag value into the pointer
// representation used by quantity rows. An empty value is absent.
func floatFlag(name, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("--%s %q is not a number", name, value)
	}
	return types.Float(f), nil
}
