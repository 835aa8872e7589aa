package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the CLI.
const (
	envKeyID            = "SIGKIT_KEY_ID"
	envSecretKey        = "SIGKIT_SECRET_KEY"
	envPublicKey        = "SIGKIT_PUBLIC_KEY"
	envLogLevel         = "SIGKIT_LOG_LEVEL"
	envNicewareWordlist = "SIGKIT_NICEWARE_WORDLIST"
)

// Config holds the process environment of a run.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getenv looks up environment variables. Values from the process
	// environment take precedence over EnvFile.
	Getenv func(string) string
	// EnvFile is an optional dotenv file. A missing file is not an error.
	EnvFile string

	fileEnv map[string]string
}

// DefaultConfig returns a Config bound to the process.
func DefaultConfig() *Config {
	return &Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		EnvFile: ".env",
	}
}

// loadEnvFile reads EnvFile once.
func (c *Config) loadEnvFile() error {
	if c.fileEnv != nil || c.EnvFile == "" {
		return nil
	}
	env, err := godotenv.Read(c.EnvFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.fileEnv = map[string]string{}
			return nil
		}
		return fmt.Errorf("load %s: %w", c.EnvFile, err)
	}
	c.fileEnv = env
	return nil
}

func (c *Config) env(key string) string {
	if c.Getenv != nil {
		if v := c.Getenv(key); v != "" {
			return v
		}
	}
	return c.fileEnv[key]
}

func (c *Config) logger() *slog.Logger {
	level := slog.LevelWarn
	if v := c.env(envLogLevel); v != "" {
		if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			level = slog.LevelWarn
		}
	}
	w := c.Stderr
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
