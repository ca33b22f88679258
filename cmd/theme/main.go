package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "theme",
		Short: "MDamascus storefront theme backend",
		Long: `Backend for the MDamascus storefront theme script.

Available subcommands:
  serve    - Run the HTTP backend (money, cart, newsletter, search)
  format   - Format an amount in minor units with a money template
  keywords - List the placeholders a money template may use
  bindings - Bind the page behaviors against the storefront and list them`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newFormatCmd(), newKeywordsCmd(), newBindingsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
