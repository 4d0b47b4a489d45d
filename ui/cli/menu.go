// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toeirei/littlelemon/internal/i18n"
	"github.com/toeirei/littlelemon/internal/menu"
)

// persistError turns a cache write failure into the user-facing message.
func persistError(err error) error {
	if errors.Is(err, menu.ErrPersist) {
		return errors.New(i18n.T("menu.error_persist", err))
	}
	return err
}

func newMenuCmd() *cobra.Command {
	var search string
	var categories []string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: i18n.T("menu.short"),
		Long:  i18n.T("menu.long"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cache, err := app.menu(ctx)
			if err != nil {
				return persistError(err)
			}
			newRenderer(cmd.OutOrStdout()).menu(cache.Query(ctx, search, categories))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only items whose name or description contains this text")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Only items in these categories (repeatable)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "refresh",
			Short: i18n.T("menu.refresh.short"),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				cache, err := app.menuSchema(ctx)
				if err != nil {
					return err
				}
				items, err := cache.Refresh(ctx)
				if err != nil {
					return persistError(err)
				}
				newRenderer(cmd.OutOrStdout()).success(i18n.T("menu.refreshed", len(items)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "categories",
			Short: i18n.T("menu.categories.short"),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				cache, err := app.menu(ctx)
				if err != nil {
					return persistError(err)
				}
				newRenderer(cmd.OutOrStdout()).categories(cache.Categories(ctx))
				return nil
			},
		},
		&cobra.Command{
			Use:   "export FILE",
			Short: i18n.T("menu.export.short"),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				cache, err := app.menu(ctx)
				if err != nil {
					return persistError(err)
				}
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("create %s: %w", args[0], err)
				}
				n, err := cache.Export(ctx, f)
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					return err
				}
				newRenderer(cmd.OutOrStdout()).success(i18n.T("menu.exported", n, args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "import FILE",
			Short: i18n.T("menu.import.short"),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				cache, err := app.menuSchema(ctx)
				if err != nil {
					return err
				}
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				n, err := cache.Import(ctx, f)
				if err != nil {
					return err
				}
				newRenderer(cmd.OutOrStdout()).success(i18n.T("menu.imported", n, args[0]))
				return nil
			},
		},
	)
	return cmd
}
