package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetbill-dev/fleetbill/internal/fleet"
	"github.com/fleetbill-dev/fleetbill/internal/model"
	"github.com/fleetbill-dev/fleetbill/internal/runlog"
)

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "PDR Plus Rentals"))

	svc, err := fleet.Load(dir)
	require.NoError(t, err)
	require.NoError(t, svc.Add(model.VehicleDetail{Name: "Camry SD", VIN: "VIN-1", Plate: "ABC123"}))
	require.NoError(t, svc.Save(dir))

	return dir
}

func TestRunReconcile_ScansImportDir(t *testing.T) {
	dir := setupProject(t)

	rentalsCSV := "Rental Car Assigned,Rental Start Date,Rental End Date,Rental Rate,Rental Days Total\n" +
		"Camry SD (white),2024-01-01,2024-01-05,50,5\n"
	tollsCSV := "Transaction Date,License Plate,Amount,Transaction ID\n" +
		"2024-01-03,ABC-123,4.50,t1\n" +
		"2024-01-10,ZZZ999,2.00,t2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "january.csv"), []byte(rentalsCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "ntta-tolls.csv"), []byte(tollsCSV), 0o644))

	require.NoError(t, runReconcile(dir, nil, nil, false))

	// One report directory per run.
	runs, err := os.ReadDir(filepath.Join(dir, "reports"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	for _, name := range []string{"invoices.csv", "unmatched.csv", "unassigned.csv", "monthly.csv"} {
		_, err := os.Stat(filepath.Join(dir, "reports", runs[0].Name(), name))
		assert.NoError(t, err, name)
	}

	// Uploads moved to processed/.
	processed, err := os.ReadDir(filepath.Join(dir, "import", "processed"))
	require.NoError(t, err)
	assert.Len(t, processed, 2)

	// Run log captured the counts.
	entries, err := runlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, runs[0].Name(), entries[0].RunID)
	assert.Equal(t, 1, entries[0].Rentals)
	assert.Equal(t, 2, entries[0].Tolls)
	assert.Equal(t, 1, entries[0].Matched)
	assert.Equal(t, 1, entries[0].Unassigned)
}

func TestRunReconcile_ExplicitFilesKept(t *testing.T) {
	dir := setupProject(t)

	tollsCSV := "Date,Plate,Amount,Transaction ID\n2024-01-03,ABC123,4.50,t1\n"
	path := filepath.Join(dir, "tolls.csv")
	require.NoError(t, os.WriteFile(path, []byte(tollsCSV), 0o644))

	require.NoError(t, runReconcile(dir, nil, []string{path}, false))

	// Explicit files are never moved.
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestRunReconcile_EmptyImportDir(t *testing.T) {
	dir := setupProject(t)
	err := runReconcile(dir, nil, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to reconcile")
}
