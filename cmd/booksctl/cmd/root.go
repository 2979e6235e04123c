// Package cmd provides the booksctl commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/firm_books/internal/platform/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	debug  bool
	output string
	cfg    *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "booksctl",
	Short: "Work with firm books from the command line",
	Long: `booksctl runs the bookkeeping engine offline.

It supports:
- Suggesting postings for a narration
- Producing statements from an exported transactions file
- Computing GST invoice lines and totals
- Minting development tokens for the API

Configuration is read from the environment and .env, as for the server.

Example:
  booksctl classify "Paid rent 5000"
  booksctl report trial-balance --file export.json
  booksctl invoice --item "Rice,2,100,5" --item "Oil,1,200"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := slog.LevelWarn
		if debug {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

		switch output {
		case "json", "yaml":
		default:
			return fmt.Errorf("unknown output format %q (want json or yaml)", output)
		}

		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(tokenCmd)
}

// render writes v in the selected output format.
func render(w io.Writer, v any) error {
	if output == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(toPlain(v))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// toPlain round-trips v through JSON so the YAML output uses the same field names
// and decimal formatting as the API.
func toPlain(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return v
	}
	return plain
}
