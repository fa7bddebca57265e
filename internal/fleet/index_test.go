package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetbill-dev/fleetbill/internal/model"
)

func testVehicles() []model.VehicleDetail {
	return []model.VehicleDetail{
		{Name: "Camry", VIN: "VIN-CAMRY", Plate: "TX CAM-100"},
		{Name: "Camry SD", VIN: "VIN-CAMRYSD", Plate: "ABC123", PaperPlate: "tx paper-9"},
		{Name: "F-150", VIN: "VIN-F150", Plate: "TRK555"},
	}
}

func TestNewIndex(t *testing.T) {
	idx := NewIndex(testVehicles())

	v, ok := idx.ByPlate("abc-123")
	require.True(t, ok)
	assert.Equal(t, "VIN-CAMRYSD", v.VIN)

	// Paper plate is indexed too.
	v, ok = idx.ByPlate("PAPER9")
	require.True(t, ok)
	assert.Equal(t, "VIN-CAMRYSD", v.VIN)

	_, ok = idx.ByPlate("ZZZ999")
	assert.False(t, ok)

	assert.Empty(t, idx.Warnings())
}

func TestNewIndex_SkipsEmptyPlates(t *testing.T) {
	idx := NewIndex([]model.VehicleDetail{{Name: "No Plate", VIN: "VIN-X"}})
	_, ok := idx.ByPlate("")
	assert.False(t, ok)
}

func TestNewIndex_CollisionLastWriteWins(t *testing.T) {
	vehicles := []model.VehicleDetail{
		{Name: "First", VIN: "VIN-1", Plate: "DUP111"},
		{Name: "Second", VIN: "VIN-2", Plate: "tx dup-111"},
	}
	idx := NewIndex(vehicles)

	v, ok := idx.ByPlate("DUP111")
	require.True(t, ok)
	assert.Equal(t, "VIN-2", v.VIN, "later vehicle wins the plate")

	require.Len(t, idx.Warnings(), 1)
	assert.Contains(t, idx.Warnings()[0], "DUP111")
}

func TestFindBestByName_LongestPrefixWins(t *testing.T) {
	vehicles := testVehicles()

	v := FindBestByName("Camry SD white", vehicles)
	require.NotNil(t, v)
	assert.Equal(t, "Camry SD", v.Name)

	v = FindBestByName("camry (blue)", vehicles)
	require.NotNil(t, v)
	assert.Equal(t, "Camry", v.Name)

	v = FindBestByName("  F-150 crew cab  ", vehicles)
	require.NotNil(t, v)
	assert.Equal(t, "F-150", v.Name)
}

func TestFindBestByName_NoMatch(t *testing.T) {
	vehicles := testVehicles()

	assert.Nil(t, FindBestByName("", vehicles))
	assert.Nil(t, FindBestByName("   ", vehicles))
	assert.Nil(t, FindBestByName("Tundra", vehicles))
	// Input must start with the canonical name, not merely contain it.
	assert.Nil(t, FindBestByName("white Camry", vehicles))
}
