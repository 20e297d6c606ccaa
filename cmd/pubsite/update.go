package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mbalogh/pubsite/internal/mtmt"
	"github.com/mbalogh/pubsite/internal/patch"
	"github.com/mbalogh/pubsite/internal/pubs"
	"github.com/mbalogh/pubsite/internal/render"
	"github.com/mbalogh/pubsite/pkg/types"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch publications and regenerate the site document",
	Long: `Update fetches all publications of the configured author from MTMT,
normalizes and groups them by year, renders the publications HTML fragment,
and replaces the marker-bounded region of the target document.

A network failure mid-pagination is not fatal: the pages collected so far
are still rendered. An empty result set leaves the document untouched.
A document without the marker pair is an error and nothing is written.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().Int64("author", 0, "author MTID to fetch publications for")
	updateCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	updateCmd.Flags().String("index", "", "target HTML document (default index.html)")
	updateCmd.Flags().Bool("dry-run", false, "print the rendered fragment instead of writing the document")

	rootCmd.AddCommand(updateCmd)
}

// fetchConfigFromFlags builds the fetch settings from configuration with
// per-invocation flag overrides.
func fetchConfigFromFlags(cmd *cobra.Command) types.FetchConfig {
	cfg := mtmt.DefaultFetchConfig()
	cfg.AuthorMTID = viper.GetInt64("author_mtid")
	cfg.PageSize = viper.GetInt("page_size")
	cfg.Timeout = viper.GetDuration("timeout")
	cfg.UserAgent = viper.GetString("user_agent")
	cfg.RequestsPerSecond = viper.GetFloat64("requests_per_second")

	if cmd.Flags().Changed("author") {
		cfg.AuthorMTID, _ = cmd.Flags().GetInt64("author")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	return cfg
}

func siteConfigFromFlags(cmd *cobra.Command) types.SiteConfig {
	cfg := types.SiteConfig{
		IndexPath:   viper.GetString("index_path"),
		MarkerStart: viper.GetString("marker_start"),
		MarkerEnd:   viper.GetString("marker_end"),
	}
	if cmd.Flags().Changed("index") {
		cfg.IndexPath, _ = cmd.Flags().GetString("index")
	}
	return cfg
}

func runUpdate(cmd *cobra.Command, args []string) error {
	fetchCfg := fetchConfigFromFlags(cmd)
	siteCfg := siteConfigFromFlags(cmd)

	client := mtmt.NewClient(fetchCfg)
	records := client.FetchAll(cmd.Context(), fetchCfg, os.Stderr)
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "No publications found. Exiting without changes.")
		return nil
	}

	normalized := pubs.NormalizeAll(records, fetchCfg.AuthorMTID)
	groups := pubs.GroupByYear(normalized)
	fragment := render.Fragment(groups)

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(os.Stdout, fragment)
		return nil
	}

	if err := patch.UpdateFile(siteCfg.IndexPath, siteCfg.MarkerStart, siteCfg.MarkerEnd, fragment); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Updated %s with %d publications.\n", siteCfg.IndexPath, len(normalized))
	return nil
}
