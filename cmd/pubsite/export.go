package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbalogh/pubsite/internal/mtmt"
	"github.com/mbalogh/pubsite/internal/pubs"
	"github.com/mbalogh/pubsite/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export publications as CSL-YAML or JSON",
	Long: `Export fetches the configured author's publications and writes them
as a CSL-YAML bibliography (consumable by Pandoc and reference managers)
or, with --json, as the normalized display records in indented JSON.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().Int64("author", 0, "author MTID to fetch publications for")
	exportCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	exportCmd.Flags().Bool("json", false, "output normalized records as JSON instead of CSL-YAML")
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	fetchCfg := fetchConfigFromFlags(cmd)

	client := mtmt.NewClient(fetchCfg)
	records := client.FetchAll(cmd.Context(), fetchCfg, os.Stderr)
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "No publications found.")
		return nil
	}

	var w io.Writer = os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return render.FormatJSON(pubs.NormalizeAll(records, fetchCfg.AuthorMTID), w)
	}
	return render.FormatCSL(records, w)
}
