// Package cli implements the hillcipher command-line interface.
//
// The root command keeps the classic three-argument form
//
//	hillcipher MESSAGE KEY FLAG
//
// where FLAG is 0 to encrypt and 1 to decrypt. The encrypt, decrypt and key
// subcommands spell the same operations out by name.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context and writes to stderr; cipher output goes to
// stdout only.
//
// # Configuration
//
// Settings resolve as defaults, then the TOML file named by --config or
// HILLCIPHER_CONFIG, then HILLCIPHER_* variables, then flags.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/internal/config"
)

const appName = "hillcipher"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	out     io.Writer
	ciphers *hill.Cache

	configPath string
	verbose    bool
	noColor    bool
}

// New creates a CLI writing results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Config: config.Default(),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// NoColor reports whether styled output is disabled.
func (c *CLI) NoColor() bool { return c.Config.NoColor }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName + " MESSAGE KEY FLAG",
		Short: "Hill cipher encryption and decryption",
		Long: `hillcipher encrypts text with a Hill cipher: the key string is laid out as a
square matrix of code points, the message is split into blocks of the same
width and each block is multiplied by the key. FLAG 0 encrypts MESSAGE,
FLAG 1 decrypts MESSAGE given as space-separated integers.`,
		Example: `  hillcipher "ACT" GYBNQKURP 0
  hillcipher "16981 18100 16035" GYBNQKURP 1`,
		Args:              usageArgs(cobra.ExactArgs(3)),
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := hill.ParseMode(args[2])
			if err != nil {
				return err
			}
			return c.runCipher(cmd, mode, args[0], args[1])
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file (default $"+config.EnvConfigPath+")")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable styled output")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.AddCommand(c.encryptCommand())
	root.AddCommand(c.decryptCommand())
	root.AddCommand(c.keyCommand())

	return root
}

// setup resolves configuration and attaches the logger to the command context.
// It runs after argument validation, so usage is still printed for bad
// arguments but not for cipher errors.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	path := c.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if c.noColor {
		cfg.NoColor = true
	}
	if c.verbose {
		cfg.LogLevel = log.DebugLevel.String()
	}
	c.Config = cfg
	c.ciphers = hill.NewCache(cfg.CipherOptions()...)

	c.SetLogLevel(cfg.Level())
	if cfg.NoColor {
		c.Logger.SetColorProfile(termenv.Ascii)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	c.Logger.Debug("configuration resolved", "config", path, "log_level", cfg.LogLevel, "max_key_length", cfg.MaxKeyLength)
	return nil
}

// cipher returns the Cipher for key from the per-run cache.
func (c *CLI) cipher(key string) (*hill.Cipher, error) {
	if c.ciphers == nil {
		c.ciphers = hill.NewCache(c.Config.CipherOptions()...)
	}
	return c.ciphers.Get(key)
}

// usageArgs tags argument validation failures with ErrUsage.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
