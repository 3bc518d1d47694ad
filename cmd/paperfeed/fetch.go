package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperfeed/internal/arxiv"
	"github.com/pdiddy/paperfeed/internal/pipeline"
	"github.com/pdiddy/paperfeed/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch paper metadata from arXiv and write the output file",
	Long: `Fetch runs the pipeline once: build the query URL, perform a single
GET against the arXiv API, parse the Atom feed, and write the payload to the
output path. Parameters come from flags, PAPERFEED_* environment variables,
or the config file, in that order of precedence. Any failure leaves the
output file untouched and exits nonzero.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("query", "", "arXiv search expression")
	fetchCmd.Flags().String("max-results", "", "maximum number of results to request")
	fetchCmd.Flags().String("output", "", "output file path (default data/arxiv.json)")
	fetchCmd.Flags().String("sort-by", "", "arXiv sort field (default lastUpdatedDate)")
	fetchCmd.Flags().String("sort-order", "", "arXiv sort direction (default descending)")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().String("format", "", "output format: json or yaml (default json)")
	fetchCmd.Flags().String("query-file", "", "load query parameters from a YAML query file")
	fetchCmd.Flags().String("save-query", "", "save the effective query and run summary to a YAML file")
	fetchCmd.Flags().String("archive", "", "append the run to a SQLite archive at this path")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	report, err := pipeline.Run(cmd.Context(), cfg, client, os.Stdout)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save-query"); savePath != "" {
		if err := arxiv.WriteQueryFile(savePath, cfg, report.Count); err != nil {
			return err
		}
	}
	return nil
}

// resolveConfig merges flags, environment, and config file into the explicit
// config struct the pipeline takes. Precedence: flag > environment > config
// file > query file > built-in default. Validation happens here, once,
// before any stage runs.
func resolveConfig(cmd *cobra.Command) (types.FetchConfig, error) {
	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   pipeline.DefaultTimeout,
			UserAgent: pipeline.DefaultUserAgent,
		},
		Query:      pipeline.DefaultQuery,
		MaxResults: pipeline.DefaultMaxResults,
		SortBy:     pipeline.DefaultSortBy,
		SortOrder:  pipeline.DefaultSortOrder,
		OutputPath: pipeline.DefaultOutput,
		Format:     types.OutputJSON,
	}

	if path, _ := cmd.Flags().GetString("query-file"); path != "" {
		qf, err := arxiv.ReadQueryFile(path)
		if err != nil {
			return cfg, err
		}
		qf.Query.ApplyTo(&cfg)
	}

	if v := stringSetting(cmd, "query", "query"); v != "" {
		cfg.Query = v
	}
	if v := stringSetting(cmd, "max-results", "max_results"); v != "" {
		n, err := pipeline.ParseMaxResults(v)
		if err != nil {
			return cfg, err
		}
		cfg.MaxResults = n
	}
	if v := stringSetting(cmd, "output", "output"); v != "" {
		cfg.OutputPath = v
	}
	if v := stringSetting(cmd, "sort-by", "sort_by"); v != "" {
		cfg.SortBy = v
	}
	if v := stringSetting(cmd, "sort-order", "sort_order"); v != "" {
		cfg.SortOrder = v
	}
	if d, _ := cmd.Flags().GetDuration("timeout"); d > 0 {
		cfg.Timeout = d
	}
	if v := stringSetting(cmd, "format", "format"); v != "" {
		switch types.OutputFormat(v) {
		case types.OutputJSON, types.OutputYAML:
			cfg.Format = types.OutputFormat(v)
		default:
			return cfg, types.Errorf(types.KindConfig, "unknown format %q (want json or yaml)", v)
		}
	}
	if v, _ := cmd.Flags().GetString("archive"); v != "" {
		cfg.ArchivePath = v
	}

	return cfg, nil
}

// stringSetting returns the flag value when set on the command line,
// otherwise the viper value (environment or config file) for key.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}
