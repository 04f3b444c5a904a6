package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salesboard/internal/logger"
	"salesboard/internal/model"
	"salesboard/internal/server"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	var (
		year    int
		month   int
		table   bool
		pretty  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Scan both partitions once and print totals (or the filtered table) as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, info, err := opts.load()
			if err != nil {
				return err
			}
			log := zap.NewNop()
			if verbose {
				// 日志写 stderr，stdout 只输出 JSON
				log = logger.Must(cfg.Log.Mode)
				defer func() { _ = log.Sync() }()
			}
			engine := server.NewEngine(cfg, baseDir(info), log)

			var out any
			if table {
				var filter model.TableFilter
				if cmd.Flags().Changed("year") {
					filter.Year = &year
				}
				if cmd.Flags().Changed("month") {
					if month < 1 || month > 12 {
						return fmt.Errorf("invalid month: %d", month)
					}
					filter.Month = &month
				}
				out, err = engine.GetFilteredTable(filter)
			} else {
				out, err = engine.DirectoryTotals()
			}
			if err != nil {
				return err
			}

			var data []byte
			if pretty {
				data, err = json.MarshalIndent(out, "", "  ")
			} else {
				data, err = json.Marshal(out)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&table, "table", false, "print the row-level table instead of totals")
	cmd.Flags().IntVar(&year, "year", 0, "table year filter")
	cmd.Flags().IntVar(&month, "month", 0, "table month filter (1-12)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print JSON output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log scanned directories and skipped sheets to stderr")
	return cmd
}
