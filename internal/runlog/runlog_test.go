package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	root := t.TempDir()

	e1 := Entry{
		Timestamp:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		RunID:      "run-1",
		Sources:    "rentals.xlsx;tolls.csv",
		Rentals:    12,
		Tolls:      40,
		Matched:    30,
		Unmatched:  8,
		Unassigned: 2,
	}
	require.NoError(t, Append(root, []Entry{e1}))

	// Second append must not rewrite the header.
	e2 := e1
	e2.RunID = "run-2"
	require.NoError(t, Append(root, []Entry{e2}))

	data, err := os.ReadFile(filepath.Join(root, "logs", "run-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "timestamp,"))

	entries, err := Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, e1, entries[0])
	assert.Equal(t, "run-2", entries[1].RunID)
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntry_BadCount(t *testing.T) {
	row := MarshalEntry(Entry{Timestamp: time.Now(), RunID: "r"})
	row[colRentals] = "many"
	_, err := UnmarshalEntry(row)
	require.Error(t, err)
}
