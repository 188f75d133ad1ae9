package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pyregraph/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the resolved card cache",
	}

	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheListCommand())
	cmd.AddCommand(c.cacheClearCommand())

	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the card cache is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := newStore(cfg, false)
			if err != nil {
				return err
			}
			defer closeStore()

			fmt.Fprintln(cmd.OutOrStdout(), describeStore(store, cfg))
			return nil
		},
	}
}

// cacheListCommand creates the "cache list" subcommand.
func (c *CLI) cacheListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the names stored in the card cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := newStore(cfg, false)
			if err != nil {
				return err
			}
			defer closeStore()

			names, err := cache.New(store).Names(cmd.Context())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printInfo("Cache is empty")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			printKeyValue("Entries", StyleNumber.Render(strconv.Itoa(len(names))))
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := newStore(cfg, false)
			if err != nil {
				return err
			}
			defer closeStore()

			entries := cache.New(store)
			count, err := entries.Len(cmd.Context())
			if err != nil {
				// An unreadable snapshot is still removed.
				c.Logger.Warn("cache unreadable", "err", err)
			}
			if err := entries.Clear(cmd.Context()); err != nil {
				return err
			}

			printSuccess("Cleared %d cached cards", count)
			printDetail("Location: %s", describeStore(store, cfg))
			return nil
		},
	}
}
