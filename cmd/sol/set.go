package main

import (
	"github.com/spf13/cobra"

	"github.com/oy3o/sol/tree"
)

func newSetCommand(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "set FILE PATH VALUE",
		Short: "Change one value of a shared object",
		Long: `Replaces the value at PATH with VALUE, parsed as the type the value
already has. PATH uses dots between keys and [i] for array elements,
for example "player.scores[2]". A '.', '[' or '\' that is part of a
key is written with a backslash in front: "window\.size".

The file is rewritten through a temporary file, so a failed write
leaves the original in place.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, path, value := args[0], args[1], args[2]
			doc, err := a.read(file)
			if err != nil {
				return err
			}
			at, err := tree.ParsePath(path)
			if err != nil {
				return err
			}
			pairs, err := tree.SetAt(doc.Pairs, at, value)
			if err != nil {
				return err
			}
			doc.Pairs = pairs
			a.logger.Debug("edited value", "path", path, "value", value)
			if dryRun {
				return tree.RenderDocument(cmd.OutOrStdout(), doc, nil)
			}
			return a.write(file, doc)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the edited tree instead of writing the file")
	return cmd
}
