package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fleetbill-dev/fleetbill/internal/config"
	"github.com/fleetbill-dev/fleetbill/internal/crossref"
	"github.com/fleetbill-dev/fleetbill/internal/fleet"
	"github.com/fleetbill-dev/fleetbill/internal/importer"
	"github.com/fleetbill-dev/fleetbill/internal/model"
	"github.com/fleetbill-dev/fleetbill/internal/report"
	"github.com/fleetbill-dev/fleetbill/internal/runlog"
)

func newReconcileCommand() *cobra.Command {
	var projectDir string
	var rentalFiles []string
	var tollFiles []string
	var keep bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Match tolls to rental periods and write report CSVs",
		Long: `Reconcile parses uploaded rental and toll spreadsheets, matches each toll
to the rental window it occurred in, and writes invoice, unmatched-toll, and
monthly-summary CSVs under reports/<run-id>/.

With no --rentals/--tolls flags, files in import/ are used: names containing
"toll" are read as toll exports, everything else as rental sheets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runReconcile(absDir, rentalFiles, tollFiles, keep)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringSliceVar(&rentalFiles, "rentals", nil, "rental spreadsheet file(s)")
	cmd.Flags().StringSliceVar(&tollFiles, "tolls", nil, "toll export file(s)")
	cmd.Flags().BoolVar(&keep, "keep", false, "leave scanned uploads in import/ instead of moving them to processed/")

	return cmd
}

func runReconcile(root string, rentalFiles, tollFiles []string, keep bool) error {
	cfg, err := config.Load(filepath.Join(root, "fleetbill.yaml"))
	if err != nil {
		return err
	}
	overrides, err := cfg.Overrides()
	if err != nil {
		return err
	}

	registry, err := fleet.Load(root)
	if err != nil {
		return err
	}

	var scanned []importer.FileInfo
	if len(rentalFiles) == 0 && len(tollFiles) == 0 {
		scanned, err = importer.Scan(root)
		if err != nil {
			return err
		}
		if len(scanned) == 0 {
			return fmt.Errorf("nothing to reconcile: import/ is empty and no files were given")
		}
		for _, f := range scanned {
			if strings.Contains(strings.ToLower(f.Name), "toll") {
				tollFiles = append(tollFiles, f.Path)
			} else {
				rentalFiles = append(rentalFiles, f.Path)
			}
		}
	}

	var rentals []model.Record
	for _, path := range rentalFiles {
		recs, err := readRentals(path)
		if err != nil {
			return err
		}
		rentals = append(rentals, recs...)
	}

	var tolls []model.TollCharge
	for _, path := range tollFiles {
		ts, err := readTolls(path)
		if err != nil {
			return err
		}
		tolls = append(tolls, ts...)
	}

	for _, w := range fleet.NewIndex(registry.All()).Warnings() {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	res := crossref.CrossReference(rentals, tolls, registry.All())
	months := report.Monthly(res.Rentals, overrides)

	runID := uuid.NewString()
	reportDir := filepath.Join(root, "reports", runID)
	if err := report.WriteAll(reportDir, res, months); err != nil {
		return err
	}

	matched := 0
	for _, r := range res.Rentals {
		matched += len(r.MatchedTolls)
	}
	unmatched := 0
	for _, g := range res.UnmatchedGroups {
		unmatched += len(g.Tolls)
	}

	var sources []string
	for _, path := range append(append([]string{}, rentalFiles...), tollFiles...) {
		sources = append(sources, filepath.Base(path))
	}
	entry := runlog.Entry{
		Timestamp:  time.Now(),
		RunID:      runID,
		Sources:    strings.Join(sources, ";"),
		Rentals:    len(rentals),
		Tolls:      len(tolls),
		Matched:    matched,
		Unmatched:  unmatched,
		Unassigned: len(res.UnassignedTolls),
	}
	if err := runlog.Append(root, []runlog.Entry{entry}); err != nil {
		return err
	}

	if !keep {
		for _, f := range scanned {
			if err := importer.MarkProcessed(root, f.Name); err != nil {
				return err
			}
		}
	}

	fmt.Printf("Run %s: %d rentals, %d tolls (%d matched, %d unmatched, %d unassigned)\n",
		runID, len(rentals), len(tolls), matched, unmatched, len(res.UnassignedTolls))
	fmt.Printf("Reports written to %s\n", reportDir)
	return nil
}

func readRentals(path string) ([]model.Record, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return importer.RentalsFromXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return importer.RentalsFromCSV(f)
}

func readTolls(path string) ([]model.TollCharge, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return importer.TollsFromXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return importer.TollsFromCSV(f)
}
