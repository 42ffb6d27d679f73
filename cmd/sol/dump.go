package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oy3o/sol/tree"
)

func newDumpCommand(a *app) *cobra.Command {
	var (
		filter  string
		format  string
		header  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the value tree of a shared object",
		Long: `Prints every pair of the shared object, descending into nested objects
and arrays. --filter limits the output to top-level keys containing the
given substring.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.read(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			opts := &tree.Options{Filter: tree.Contains(filter)}
			if header {
				fmt.Fprintf(out, "# %s, %s, length %d\n", doc.Version, doc.Framing, doc.Length)
			}

			switch format {
			case "text":
				if !noColor {
					applyStyles(opts, out)
				}
				return tree.RenderDocument(out, doc, opts)
			case "yaml":
				node, err := tree.YAML(doc.RootName, doc.Pairs, opts)
				if err != nil {
					return err
				}
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(node); err != nil {
					return err
				}
				return enc.Close()
			}
			return fmt.Errorf("unknown format %q (want text or yaml)", format)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only show top-level keys containing this substring")
	cmd.Flags().StringVarP(&format, "format", "o", "text", "output format: text or yaml")
	cmd.Flags().BoolVar(&header, "header", false, "print version, framing and length first")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored keys")
	return cmd
}

// applyStyles colors keys and placeholders. The renderer inspects out, so
// pipes and files get plain text.
func applyStyles(opts *tree.Options, out io.Writer) {
	r := lipgloss.NewRenderer(out)
	keyStyle := r.NewStyle().Foreground(lipgloss.Color("#3b82f6")).Bold(true)
	placeholderStyle := r.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Italic(true)
	opts.KeyStyle = func(s string) string { return keyStyle.Render(s) }
	opts.PlaceholderStyle = func(s string) string { return placeholderStyle.Render(s) }
}
