package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tx-abc 123", "ABC123"},
		{"ABC123", "ABC123"},
		{"TX ABC-123", "ABC123"},
		{"abc123", "ABC123"},
		{"  tx1234 ", "1234"},
		{"TX", ""},
		{"", ""},
		{"!!--..", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Plate(tt.in), "Plate(%q)", tt.in)
	}
}

func TestPlate_SameCanonicalForm(t *testing.T) {
	assert.Equal(t, Plate("ABC123"), Plate("tx-abc 123"))
}

func TestDate_SpreadsheetSerial(t *testing.T) {
	got, ok := Date(25569)
	require.True(t, ok)
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), got)

	// Serial 45366 = 2024-03-15.
	got, ok = Date(float64(45366))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDate_Strings(t *testing.T) {
	got, ok := Date("2024-03-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)

	got, ok = Date("01/03/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), got)

	// Numeric strings fall through to the serial interpretation.
	got, ok = Date("25569")
	require.True(t, ok)
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = Date("not a date")
	assert.False(t, ok)

	_, ok = Date("")
	assert.False(t, ok)
}

func TestDate_NativePassThrough(t *testing.T) {
	in := time.Date(2024, 6, 1, 12, 30, 0, 0, time.FixedZone("CST", -6*3600))
	got, ok := Date(in)
	require.True(t, ok)
	assert.True(t, in.Equal(got))
	assert.Equal(t, time.UTC, got.Location())
}

func TestDate_Unparseable(t *testing.T) {
	_, ok := Date(nil)
	assert.False(t, ok)

	_, ok = Date(struct{}{})
	assert.False(t, ok)

	_, ok = Date(time.Time{})
	assert.False(t, ok)

	_, ok = Date(-1.0)
	assert.False(t, ok)
}

func TestSplitPlates(t *testing.T) {
	assert.Equal(t, []string{"ABC123", "DEF456"}, SplitPlates("abc-123 / TX DEF456"))
	assert.Equal(t, []string{"ABC123"}, SplitPlates("ABC123 / tx-abc123"))
	assert.Nil(t, SplitPlates(" / "))
	assert.Nil(t, SplitPlates(""))
}

func TestAmount(t *testing.T) {
	d, ok := Amount("$1,234.50")
	require.True(t, ok)
	assert.Equal(t, "1234.50", d.StringFixed(2))

	d, ok = Amount(4.5)
	require.True(t, ok)
	assert.Equal(t, "4.50", d.StringFixed(2))

	_, ok = Amount("n/a")
	assert.False(t, ok)

	_, ok = Amount(nil)
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	n, ok := Count("5")
	require.True(t, ok)
	assert.Equal(t, 5, n)

	n, ok = Count(3.0)
	require.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = Count("five")
	assert.False(t, ok)
}
