package catalogfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "restaurants.json")
	snap := &Snapshot{
		Version: CurrentVersion,
		Restaurants: []Entry{
			{ID: 1, Name: "川味小厨", Cuisine: "川菜", Price: 45, Rating: 4.5, DeliveryTime: 35},
		},
	}

	require.NoError(t, Save(path, snap))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, snap.Restaurants, loaded.Restaurants)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(err))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	snap := &Snapshot{Restaurants: []Entry{
		{ID: 1, Name: "A", Cuisine: "川菜", Price: 10, Rating: 4},
		{ID: 1, Name: "B", Cuisine: "川菜", Price: 10, Rating: 4},
		{ID: 2, Name: "A", Cuisine: "", Price: -1, Rating: 6, DeliveryTime: -5},
		{ID: 3, Name: " ", Cuisine: "湘菜"},
	}}

	problems := Validate(snap)
	assert.Contains(t, problems, "restaurants[1]: duplicate id 1")
	assert.Contains(t, problems, `restaurants[2]: duplicate name "A"`)
	assert.Contains(t, problems, "restaurants[2]: cuisine is empty")
	assert.Contains(t, problems, "restaurants[2]: negative price -1")
	assert.Contains(t, problems, "restaurants[2]: rating 6 outside 0-5")
	assert.Contains(t, problems, "restaurants[2]: negative delivery time -5")
	assert.Contains(t, problems, "restaurants[3]: name is empty")
	assert.Len(t, problems, 7)

	assert.Empty(t, Validate(&Snapshot{Restaurants: snap.Restaurants[:1]}))
}
