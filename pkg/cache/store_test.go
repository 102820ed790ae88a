package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hap-bridge/accessory-go/pkg/accessory"
	"github.com/hap-bridge/accessory-go/pkg/serialize"
)

func testRecord(t *testing.T) *serialize.AccessoryRecord {
	t.Helper()

	acc, err := accessory.New("Lamp", "93bd9ede-1783-4957-a6cb-0dd06f7f1a29", accessory.CategoryLightbulb)
	require.NoError(t, err)
	acc.SetPluginName("plugin-example")
	return serialize.Serialize(acc)
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge", "cachedAccessories.json")
	store := NewStore(path)

	rec := testRecord(t)
	require.NoError(t, store.Save([]*serialize.AccessoryRecord{rec}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, rec.DisplayName, loaded[0].DisplayName)
	require.Equal(t, rec.ID, loaded[0].ID)
	require.Equal(t, rec.Plugin, loaded[0].Plugin)

	// Loaded records must reconstruct.
	restored, err := serialize.Deserialize(loaded[0])
	require.NoError(t, err)
	require.Equal(t, "Lamp", restored.DisplayName())
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	records, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, records)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewStore(path).Load()
	require.Error(t, err)
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	store := NewStore(path)

	require.NoError(t, store.Save([]*serialize.AccessoryRecord{testRecord(t)}))
	require.NoError(t, store.Clear())

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// Clearing an absent file is not an error.
	require.NoError(t, store.Clear())
}
