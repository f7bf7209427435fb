package cli

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillcipher/hill"
)

func (c *CLI) encryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt MESSAGE KEY",
		Short:   "Encrypt MESSAGE with KEY",
		Example: `  hillcipher encrypt "ACT" GYBNQKURP`,
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCipher(cmd, hill.ModeEncrypt, args[0], args[1])
		},
	}
}

func (c *CLI) decryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt CIPHERTEXT KEY",
		Short:   "Decrypt space-separated integer CIPHERTEXT with KEY",
		Example: `  hillcipher decrypt "16981 18100 16035" GYBNQKURP`,
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCipher(cmd, hill.ModeDecrypt, args[0], args[1])
		},
	}
}

func (c *CLI) keyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "key KEY",
		Short: "Print the key matrix, its determinant and its inverse",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			ciph, err := c.cipher(args[0])
			if err != nil {
				return err
			}
			logger.Debug("key accepted", "size", ciph.Size())
			verifyInverse(logger, ciph)

			p := newPrinter(c.out, c.Config.NoColor)
			p.printHeading("Key matrix")
			if err := p.printMatrix(ciph.KeyMatrix()); err != nil {
				return err
			}
			p.printNewline()
			p.printHeading("Determinant")
			p.printLine(formatCell(ciph.Determinant()))
			p.printNewline()
			p.printHeading("Inverse matrix")
			return p.printMatrix(ciph.InverseKey())
		},
	}
}

// runCipher builds the cipher for key, prints the key matrix and then the
// result of running mode over input.
func (c *CLI) runCipher(cmd *cobra.Command, mode hill.Mode, input, key string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	ciph, err := c.cipher(key)
	if err != nil {
		return err
	}
	logger.Debug("key accepted", "size", ciph.Size(), "det", ciph.Determinant(), "elapsed", time.Since(start).Round(time.Microsecond))
	verifyInverse(logger, ciph)

	out, err := ciph.Apply(mode, input)
	if err != nil {
		return err
	}
	logger.Debug("message processed", "mode", mode, "input_len", len(input), "output_len", len(out))

	p := newPrinter(c.out, c.Config.NoColor)
	p.printHeading("Key matrix")
	if err := p.printMatrix(ciph.KeyMatrix()); err != nil {
		return err
	}
	p.printNewline()
	if mode == hill.ModeEncrypt {
		p.printHeading("Encrypted message")
	} else {
		p.printHeading("Decrypted message")
	}
	p.printLine(out)
	return nil
}

// verifyInverse logs whether key × inverse is the identity. A failure means
// decrypted cells may round to the wrong code point, so it is a warning.
func verifyInverse(logger *log.Logger, ciph *hill.Cipher) {
	if err := ciph.Verify(); err != nil {
		logger.Warn("inverse check failed", "err", err)
		return
	}
	logger.Debug("inverse verified", "size", ciph.Size())
}
