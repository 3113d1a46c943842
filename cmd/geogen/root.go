// geogen generates non-redundant geometric configurations.
//
// Usage:
//
//	geogen generate <problem.yaml> [--iterations=N] [--max-objects=Point=2] [--policy=global|per-layer]
//	geogen constructions [--format=text|markdown]
//	geogen layouts [--format=text|markdown]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PatrikBak/GeoGen-sub011/internal/format"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "geogen",
		Short: "Generate non-redundant geometric configurations",
		Long: "geogen extends a configuration of loose objects by constructions, layer by layer,\n" +
			"keeping one configuration per class of configurations equal up to a symmetry of the layout.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	root.PersistentFlags().String("format", "text", "Table format: text or markdown")
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newConstructionsCmd())
	root.AddCommand(newLayoutsCmd())
	root.Version = version

	return root
}

// tableMode reads the persistent --format flag.
func tableMode(cmd *cobra.Command) (format.Mode, error) {
	raw, err := cmd.Flags().GetString("format")
	if err != nil {
		return format.ASCII, err
	}
	m, ok := format.ParseMode(raw)
	if !ok {
		return format.ASCII, fmt.Errorf("unknown format %q", raw)
	}

	return m, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
