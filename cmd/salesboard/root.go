package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"salesboard/internal/config"
)

type rootOptions struct {
	configPath string
	dataDir    string
	port       int
	dev        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "salesboard",
		Short:        "Sales spreadsheet ingestion and aggregation service",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config.toml path (default: next to the executable)")
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "partition root directory (overrides config)")
	rootCmd.PersistentFlags().IntVar(&opts.port, "port", 0, "HTTP port (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&opts.dev, "dev", false, "development mode")

	rootCmd.AddCommand(newServeCmd(opts), newReportCmd(opts))
	return rootCmd
}

// load 加载配置并应用命令行覆盖；相对路径以 filepath.Dir(info.Path) 为基准
func (o *rootOptions) load() (*config.AppConfig, config.LoadConfigInfo, error) {
	cfg, info, err := config.LoadConfigWithInfo(o.configPath)
	if err != nil {
		return nil, info, err
	}

	if o.port > 0 {
		cfg.Server.Port = o.port
	}
	if o.dev {
		cfg.Server.DevMode = true
		cfg.Log.Mode = "development"
	}
	if o.dataDir != "" {
		cfg.Data.Dir = o.dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, info, err
	}

	return cfg, info, nil
}

func baseDir(info config.LoadConfigInfo) string {
	return filepath.Dir(info.Path)
}
