package main

import (
	"fmt"
	"sort"

	"github.com/dhamidi/sst/javasst/parser"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var showFirst bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the verified EBNF grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parser.Grammar()
			if err != nil {
				return fmt.Errorf("verify grammar: %w", err)
			}

			out := cmd.OutOrStdout()
			if !showFirst {
				_, err := out.Write(parser.GrammarSource())
				return err
			}

			first, err := parser.GrammarFirst(g)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(first))
			for name := range first {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "%s\t%s\n", name, first[name])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFirst, "first", false, "print the FIRST set of every production")

	return cmd
}
