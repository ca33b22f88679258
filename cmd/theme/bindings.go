package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/DanielPopoola/mdamascus-theme/internal/config"
	"github.com/spf13/cobra"
)

// pageDocument is a page built from the selectors given on the command line.
// With none, every section of the theme is present.
type pageDocument []string

func (d pageDocument) Exists(selector string) bool {
	return len(d) == 0 || slices.Contains(d, selector)
}

type badgeCount struct {
	count int
	set   bool
}

func (b *badgeCount) SetCount(n int) {
	b.count, b.set = n, true
}

func newBindingsCmd() *cobra.Command {
	var present []string

	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Bind the theme behaviors and list them",
		Long: `Bind the theme behaviors against the configured storefront, the same way a
page load does, and print the selector each behavior listens on followed by
the cart badge count.

Example:
  theme bindings --present .header__menu-toggle --present .header__mobile-menu`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runBindings(cmd, cfg, present)
		},
	}

	cmd.Flags().StringSliceVar(&present, "present", nil, "selectors present on the page (default: all)")
	return cmd
}

func runBindings(cmd *cobra.Command, cfg *config.Config, present []string) error {
	logger := cfg.Logger.NewLogger()

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	badge := &badgeCount{}
	page := a.bindPage(ctx, pageDocument(present), badge, nil)
	defer page.Close()

	out := cmd.OutOrStdout()
	for _, selector := range page.Registry.Selectors() {
		fmt.Fprintln(out, selector)
	}
	if badge.set {
		fmt.Fprintf(out, "cart item_count=%d\n", badge.count)
	} else {
		fmt.Fprintln(out, "cart item_count=unknown")
	}
	return nil
}
