package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	powerdns "github.com/jfk9w-go/libdns-powerdns"
)

func (a *app) serversCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "servers", Short: "Server instances"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List servers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[[]powerdns.Server](cmd)(a.client.Servers.List(cmd.Context()))
			},
		},
		&cobra.Command{
			Use:   "get",
			Short: "Describe the configured server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[*powerdns.Server](cmd)(a.client.Servers.Get(cmd.Context(), a.cfg.Server))
			},
		},
	)

	return cmd
}

func (a *app) zonesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "zones", Short: "Zones"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List zones",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[[]powerdns.Zone](cmd)(a.client.Zones.List(cmd.Context(), a.cfg.Server))
			},
		},
		&cobra.Command{
			Use:   "get <zone>",
			Short: "Show a zone with its RR sets",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[*powerdns.Zone](cmd)(a.client.Zones.Get(cmd.Context(), a.cfg.Server, args[0]))
			},
		},
		&cobra.Command{
			Use:   "delete <zone>",
			Short: "Delete a zone",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.client.Zones.Delete(cmd.Context(), a.cfg.Server, args[0])
			},
		},
		&cobra.Command{
			Use:   "export <zone>",
			Short: "Print a zone in AXFR format",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := a.client.Zones.Export(cmd.Context(), a.cfg.Server, args[0])
				if err != nil {
					return err
				}

				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			},
		},
		&cobra.Command{
			Use:   "rectify <zone>",
			Short: "Rectify a zone",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[*powerdns.Result](cmd)(a.client.Zones.Rectify(cmd.Context(), a.cfg.Server, args[0]))
			},
		},
		&cobra.Command{
			Use:   "notify <zone>",
			Short: "Send NOTIFY to all slaves of a zone",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[*powerdns.Result](cmd)(a.client.Zones.Notify(cmd.Context(), a.cfg.Server, args[0], nil))
			},
		},
	)

	return cmd
}

func (a *app) cryptokeysCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cryptokeys", Short: "DNSSEC keys"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <zone>",
			Short: "List DNSSEC keys of a zone",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[[]powerdns.Cryptokey](cmd)(a.client.Cryptokeys.List(cmd.Context(), a.cfg.Server, args[0]))
			},
		},
		&cobra.Command{
			Use:   "get <zone> <id>",
			Short: "Show a DNSSEC key including private key material",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.Atoi(args[1])
				if err != nil {
					return errors.Wrap(err, "parse key ID")
				}

				return printResult[*powerdns.Cryptokey](cmd)(a.client.Cryptokeys.Get(cmd.Context(), a.cfg.Server, args[0], id))
			},
		},
	)

	return cmd
}

func (a *app) metadataCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "metadata", Short: "Zone metadata"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <zone>",
			Short: "List metadata of a zone",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[[]powerdns.MetadataEntry](cmd)(a.client.Metadata.List(cmd.Context(), a.cfg.Server, args[0]))
			},
		},
		&cobra.Command{
			Use:   "set <zone> <kind> [value...]",
			Short: "Replace all values of a metadata kind",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[*powerdns.MetadataEntry](cmd)(a.client.Metadata.Update(cmd.Context(), a.cfg.Server, args[0], args[1], args[2:]))
			},
		},
	)

	return cmd
}

func (a *app) tsigkeysCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "tsigkeys", Short: "TSIG keys"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List TSIG keys",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[[]powerdns.TSIGKey](cmd)(a.client.TSIGKeys.List(cmd.Context(), a.cfg.Server))
			},
		},
	)

	return cmd
}

func (a *app) autoprimariesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "autoprimaries", Short: "Autoprimary servers"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List autoprimaries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[[]powerdns.Autoprimary](cmd)(a.client.Autoprimaries.List(cmd.Context(), a.cfg.Server))
			},
		},
	)

	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	var (
		limit      int
		objectType string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search zones, records and comments; * and ? are wildcards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult[[]powerdns.SearchResult](cmd)(a.client.Search.Search(cmd.Context(), a.cfg.Server, args[0], limit, objectType))
		},
	}

	cmd.Flags().IntVar(&limit, "max", 100, "Maximum number of results")
	cmd.Flags().StringVar(&objectType, "object-type", powerdns.ObjectTypeAll, "One of all, zone, record, comment")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	var (
		statistic    string
		includeRings bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show server statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := powerdns.StatisticsParams{Statistic: statistic}
			if cmd.Flags().Changed("include-rings") {
				params.IncludeRings = &includeRings
			}

			return printResult[[]powerdns.StatisticItem](cmd)(a.client.Statistics.Get(cmd.Context(), a.cfg.Server, params))
		},
	}

	cmd.Flags().StringVar(&statistic, "statistic", "", "Only return this statistic")
	cmd.Flags().BoolVar(&includeRings, "include-rings", true, "Include ring statistics")

	return cmd
}

func (a *app) cacheCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Server caches"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "flush <domain>",
			Short: "Flush a domain and everything below it from the caches",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult[*powerdns.CacheFlushResult](cmd)(a.client.Cache.Flush(cmd.Context(), a.cfg.Server, args[0]))
			},
		},
	)

	return cmd
}
