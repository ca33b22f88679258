package main

import (
	"fmt"

	"github.com/DanielPopoola/mdamascus-theme/internal/money"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	var amount, template string

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format an amount in minor units",
		Long: `Format an amount given in minor units (cents) with a money template.

Example:
  theme format --amount 123456 --template "{{amount_with_comma_separator}} €"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatted, err := money.NewFormatter(money.DefaultTemplate).FormatString(amount, template)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount in minor units, e.g. 1999 or \"19.99\"")
	cmd.Flags().StringVar(&template, "template", money.DefaultTemplate, "money template containing one {{keyword}} placeholder")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List money template keywords",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range money.Keywords() {
				fmt.Fprintf(cmd.OutOrStdout(), "{{%s}}\n", k)
			}
		},
	}
}
