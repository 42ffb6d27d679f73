package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the header fields of a shared object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.read(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "root:    %s\n", doc.RootName)
			fmt.Fprintf(out, "version: %s\n", doc.Version)
			fmt.Fprintf(out, "framing: %s\n", doc.Framing)
			fmt.Fprintf(out, "length:  %d\n", doc.Length)
			fmt.Fprintf(out, "pairs:   %d\n", len(doc.Pairs))
			return nil
		},
	}
}
