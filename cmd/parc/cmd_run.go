package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var errNoGrammar = errors.New("no grammar given and none configured")

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [grammar] [file]",
		Short: "Parse a file with a registered grammar",
		Long: `Parse a file with a registered grammar and print the value.

If no file is provided, reads the input from stdin.
If no grammar is provided either, the configured grammar is used.

The whole input must be consumed unless --partial is set, in which case
the length of the unconsumed remainder is logged.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.v.GetString(grammarKey)
			if len(args) > 0 {
				name = args[0]
			}
			if name == "" {
				return errNoGrammar
			}

			var input []byte
			var err error
			if len(args) == 2 {
				input, err = os.ReadFile(args[1])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			} else {
				input, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			a.log.Debug("parsing input", slog.String("grammar", name), slog.Int("bytes", len(input)))

			var v any
			if a.v.GetBool(partialKey) {
				var rest string
				v, rest, err = a.reg.ParsePartial(name, string(input))
				if err == nil && rest != "" {
					a.log.Info("trailing input left", slog.String("grammar", name), slog.Int("bytes", len(rest)))
				}
			} else {
				v, err = a.reg.Parse(name, string(input))
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatValue(v))
			return err
		},
	}

	cmd.Flags().Bool("partial", false, "accept input the grammar does not consume")
	_ = a.v.BindPFlag(partialKey, cmd.Flags().Lookup("partial"))

	return cmd
}

// formatValue prints JSON values as their source text and everything else
// with its field names.
func formatValue(v any) string {
	switch v := v.(type) {
	case gjson.Result:
		return v.Raw
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%+v", v)
	}
}
