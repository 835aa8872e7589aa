// Command sigkit derives keys, signs and verifies header maps, encodes
// passphrases and draws uniform samples. Every command writes one JSON
// object to stdout.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/vaultsandbox/sigkit"
)

const usage = `usage: sigkit <command> [args]

commands:
  seed [size]                        random seed as hex
  derive <seed-hex> [salt-hex]       keypair derived from a seed
  sign <name=value>...               descriptor over the headers (SIGKIT_KEY_ID, SIGKIT_SECRET_KEY)
  verify <name=value>...             verify a signature=<descriptor> header (SIGKIT_PUBLIC_KEY)
  hmac <message-hex> <key-hex>       HMAC-SHA512
  hkdf <ikm-hex> <length> [info-hex] [salt-hex]
  phrase [-niceware] <hex>           passphrase for a secret
  unphrase <word>...                 secret for a 16 or 24 word passphrase
  uniform <n>                        integer in [0, n)
  uniform01                          real in [0, 1]
  randint <lo> <hi>                  integer in [lo, hi)`

type command func(args []string, cfg *Config, logger *slog.Logger) (any, error)

var commands = map[string]command{
	"seed":      runSeed,
	"derive":    runDerive,
	"sign":      runSign,
	"verify":    runVerify,
	"hmac":      runHMAC,
	"hkdf":      runHKDF,
	"phrase":    runPhrase,
	"unphrase":  runUnphrase,
	"uniform":   runUniform,
	"uniform01": runUniform01,
	"randint":   runRandInt,
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return fmt.Errorf("%s", usage)
	}

	cmd, ok := commands[args[1]]
	if !ok {
		return fmt.Errorf("unknown command: %s\n%s", args[1], usage)
	}

	if err := cfg.loadEnvFile(); err != nil {
		return err
	}
	logger := cfg.logger()
	logger.Debug("running command", "command", args[1], "args", len(args)-2)

	out, err := cmd(args[2:], cfg, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}

	if err := json.NewEncoder(cfg.Stdout).Encode(out); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// KeypairOutput is the JSON form of a keypair.
type KeypairOutput struct {
	SecretKey string `json:"secretKey"`
	PublicKey string `json:"publicKey"`
}

// VerifyOutput is the JSON form of a verification result.
type VerifyOutput struct {
	KeyID     string   `json:"keyId"`
	Algorithm string   `json:"algorithm"`
	Headers   []string `json:"headers"`
	Signature string   `json:"signature"`
	Verified  bool     `json:"verified"`
}

func runSeed(args []string, _ *Config, _ *slog.Logger) (any, error) {
	size := sigkit.DefaultSeedSize
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("parse size: %w", err)
		}
		size = n
	}

	seed, err := sigkit.GenerateSeed(size)
	if err != nil {
		return nil, err
	}
	return map[string]string{"seed": sigkit.BytesToHex(seed)}, nil
}

func runDerive(args []string, _ *Config, _ *slog.Logger) (any, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: sigkit derive <seed-hex> [salt-hex]")
	}

	seed, err := sigkit.HexToBytes(args[0])
	if err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	var salt []byte
	if len(args) > 1 {
		if salt, err = sigkit.HexToBytes(args[1]); err != nil {
			return nil, fmt.Errorf("parse salt: %w", err)
		}
	}

	kp, err := sigkit.DeriveKeypair(seed, salt)
	if err != nil {
		return nil, err
	}
	return KeypairOutput{SecretKey: kp.SecretKeyHex(), PublicKey: kp.PublicKeyHex()}, nil
}

// parseHeaders reads name=value arguments, or lines of stdin when args is
// a single "-".
func parseHeaders(args []string, stdin io.Reader) (sigkit.Headers, error) {
	if len(args) == 1 && args[0] == "-" {
		var lines []string
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				lines = append(lines, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		args = lines
	}

	var h sigkit.Headers
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("header %q is not name=value", arg)
		}
		h.Add(name, value)
	}
	return h, nil
}

func runSign(args []string, cfg *Config, logger *slog.Logger) (any, error) {
	h, err := parseHeaders(args, cfg.Stdin)
	if err != nil {
		return nil, err
	}

	keyID := cfg.env(envKeyID)
	desc, err := sigkit.Sign(keyID, cfg.env(envSecretKey), h)
	if err != nil {
		return nil, err
	}
	logger.Info("signed headers", "key_id", keyID, "headers", strings.Join(h.Names(), " "))
	return map[string]string{"signature": desc}, nil
}

func runVerify(args []string, cfg *Config, logger *slog.Logger) (any, error) {
	h, err := parseHeaders(args, cfg.Stdin)
	if err != nil {
		return nil, err
	}

	res, err := sigkit.Verify(cfg.env(envPublicKey), h)
	if err != nil {
		return nil, err
	}
	if !res.Verified {
		logger.Warn("signature mismatch", "key_id", res.KeyID)
	}
	return VerifyOutput{
		KeyID:     res.KeyID,
		Algorithm: res.Algorithm,
		Headers:   res.Headers,
		Signature: res.Signature,
		Verified:  res.Verified,
	}, nil
}

func runHMAC(args []string, _ *Config, _ *slog.Logger) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("usage: sigkit hmac <message-hex> <key-hex>")
	}
	msg, err := sigkit.HexToBytes(args[0])
	if err != nil {
		return nil, fmt.Errorf("parse message: %w", err)
	}
	key, err := sigkit.HexToBytes(args[1])
	if err != nil {
		return nil, fmt.Errorf("parse key: %w", err)
	}
	return map[string]string{"mac": sigkit.BytesToHex(sigkit.HMAC(msg, key))}, nil
}

func runHKDF(args []string, _ *Config, _ *slog.Logger) (any, error) {
	if len(args) < 2 || len(args) > 4 {
		return nil, fmt.Errorf("usage: sigkit hkdf <ikm-hex> <length> [info-hex] [salt-hex]")
	}
	ikm, err := sigkit.HexToBytes(args[0])
	if err != nil {
		return nil, fmt.Errorf("parse ikm: %w", err)
	}
	length, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("parse length: %w", err)
	}

	var info, salt []byte
	if len(args) > 2 {
		if info, err = sigkit.HexToBytes(args[2]); err != nil {
			return nil, fmt.Errorf("parse info: %w", err)
		}
	}
	if len(args) > 3 {
		if salt, err = sigkit.HexToBytes(args[3]); err != nil {
			return nil, fmt.Errorf("parse salt: %w", err)
		}
	}

	okm, err := sigkit.HKDF(ikm, info, length, salt)
	if err != nil {
		return nil, err
	}
	return map[string]string{"okm": sigkit.BytesToHex(okm)}, nil
}

// passphraseEncoder adds a niceware codec when a word list file is
// configured.
func passphraseEncoder(cfg *Config) (*sigkit.PassphraseEncoder, error) {
	path := cfg.env(envNicewareWordlist)
	if path == "" {
		return sigkit.NewPassphraseEncoder(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read niceware word list: %w", err)
	}
	codec, err := sigkit.NewNicewareCodec(strings.Fields(string(data)))
	if err != nil {
		return nil, err
	}
	return sigkit.NewPassphraseEncoder(sigkit.WithNicewareCodec(codec)), nil
}

func runPhrase(args []string, cfg *Config, _ *slog.Logger) (any, error) {
	useNiceware := false
	if len(args) > 0 && args[0] == "-niceware" {
		useNiceware = true
		args = args[1:]
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: sigkit phrase [-niceware] <hex>")
	}

	enc, err := passphraseEncoder(cfg)
	if err != nil {
		return nil, err
	}
	phrase, err := enc.FromBytesOrHex(args[0], useNiceware)
	if err != nil {
		return nil, err
	}
	return map[string]string{"phrase": phrase}, nil
}

func runUnphrase(args []string, cfg *Config, _ *slog.Logger) (any, error) {
	enc, err := passphraseEncoder(cfg)
	if err != nil {
		return nil, err
	}
	hex, err := enc.ToHex32(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	return map[string]string{"hex": hex}, nil
}

func runUniform(args []string, _ *Config, _ *slog.Logger) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: sigkit uniform <n>")
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse bound: %w", err)
	}
	v, err := sigkit.Uniform(n)
	if err != nil {
		return nil, err
	}
	return map[string]uint64{"value": v}, nil
}

func runUniform01(_ []string, _ *Config, _ *slog.Logger) (any, error) {
	v, err := sigkit.Uniform01()
	if err != nil {
		return nil, err
	}
	return map[string]float64{"value": v}, nil
}

func runRandInt(args []string, _ *Config, _ *slog.Logger) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("usage: sigkit randint <lo> <hi>")
	}
	lo, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lo: %w", err)
	}
	hi, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse hi: %w", err)
	}
	v, err := sigkit.RandomInt(lo, hi)
	if err != nil {
		return nil, err
	}
	return map[string]int64{"value": v}, nil
}
