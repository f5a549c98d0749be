package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jekyll-drafts/pkg/config"
	"jekyll-drafts/pkg/handlers"
	"jekyll-drafts/pkg/logging"
	"jekyll-drafts/pkg/models"
	"jekyll-drafts/pkg/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:           "drafts",
		Short:         "Register and preview site drafts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			config.Init()
			logging.Init(config.LogLevel)
			if source != "" {
				config.SourcePath = source
			}
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = zap.L().Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&source, "source", "", "Site source directory (default $SITE_SOURCE or .)")

	cmd.AddCommand(newListCmd(), newNewCmd(), newServeCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the drafts a build would register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadSite(config.SourcePath)
			if err != nil {
				return err
			}
			pages, err := services.BuildDrafts(config.SourcePath, cfg)
			if err != nil {
				return err
			}

			if asJSON {
				if pages == nil {
					pages = []models.Page{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(pages)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tTITLE\tURL\tDIRTY")
			for _, p := range pages {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", p.Path, p.Title, p.URL, p.IsDirty)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newNewCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSite(config.SourcePath)
			if err != nil {
				return err
			}
			path, err := services.CreateDraft(config.SourcePath, cfg.Drafts.Dir, cfg.Drafts.Extension, args[0], format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Front matter format: yaml, toml or json")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the drafts preview API",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			gin.SetMode(gin.ReleaseMode)
			r := handlers.NewRouter(zap.L())
			zap.L().Info("serving drafts preview", zap.String("addr", config.ServerAddr), zap.String("source", config.SourcePath))
			return r.Run(config.ServerAddr)
		},
	}
}
