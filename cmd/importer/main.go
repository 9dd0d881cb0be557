package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go-timesheet/internal/spreadsheet"
	"go-timesheet/internal/timesheet"

	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "timesheet-import <file>...",
	Short: "Parse timesheet spreadsheets and submit them for bulk import",
	Long: `Parse one or more spreadsheet files (.csv, .xls, .xlsx) and submit the
concatenated rows to the timesheet API's bulk-import endpoint.

The first row of each sheet is the header; column labels are matched
case-insensitively against the canonical timesheet fields. Rows whose
employee id is not numeric are reported back as skipped.`,
	Example: `
  # Import a single sheet
  timesheet-import january.xlsx

  # Import several sheets against a remote server
  timesheet-import --server https://timesheets.example.com week1.csv week2.xls
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows []timesheet.RawRow
		for _, path := range args {
			parsed, err := spreadsheet.ParseFile(path)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			rows = append(rows, parsed...)
		}

		if len(rows) == 0 {
			return fmt.Errorf("no data rows found in the given files")
		}

		result, err := submit(serverURL, rows)
		if err != nil {
			return err
		}

		fmt.Printf(
			"Import completed. Rows submitted: %d, Created: %d, Existing: %d, Skipped: %d\n",
			len(rows),
			len(result.Created),
			len(result.Existing),
			len(result.Skipped),
		)
		for _, skipped := range result.Skipped {
			fmt.Printf("  row %d skipped: %s\n", skipped.Row, skipped.Reason)
		}

		return nil
	},
}

type importEnvelope struct {
	Ok   bool                       `json:"ok"`
	Data timesheet.BulkImportResult `json:"data"`
}

func submit(server string, rows []timesheet.RawRow) (timesheet.BulkImportResult, error) {
	payload, err := json.Marshal(rows)
	if err != nil {
		return timesheet.BulkImportResult{}, err
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Post(
		server+"/api/timesheets/add",
		"application/json",
		bytes.NewReader(payload),
	)
	if err != nil {
		return timesheet.BulkImportResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return timesheet.BulkImportResult{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return timesheet.BulkImportResult{}, fmt.Errorf("import failed (%d): %s", resp.StatusCode, body)
	}

	var envelope importEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return timesheet.BulkImportResult{}, err
	}
	return envelope.Data, nil
}

func init() {
	rootCmd.Flags().StringVar(&serverURL, "server", "http://localhost:5000", "Base URL of the timesheet API")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
