// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"string-sorter/internal/sortkey"
)

func newKeyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "key <string>...",
		Short: "Show the sort key derived from each argument",
		Long: `Prints the (number, text) pair used to order each argument. "inf" marks a
string without leading digits, which sorts after every numbered string.`,
		Example: "  ssort key \"2 Steaks\" 343GuiltySparks activity\n  ssort key --key lexical 10 9",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			keyFn, err := sortkey.Lookup(cfg.Key)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, arg := range args {
				fmt.Fprintf(out, "%-30q %s\n", arg, identifierColor.Sprint(keyFn(arg)))
			}
			return nil
		},
	}
}
