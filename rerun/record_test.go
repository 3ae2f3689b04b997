package rerun

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseforge/sdk/identity"
	"github.com/caseforge/sdk/testcase"
)

func sampleRecord() *Record {
	return &Record{
		Suite:      "parser",
		RunID:      "run-1",
		RecordedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		IDs: []testcase.ID{
			stableID([]byte("seven"), 0),
			stableID([]byte("seven"), 1),
			{
				ArgumentIDs:   []identity.ID{{Bytes: nil, Stable: false}},
				Discriminator: 0,
			},
		},
	}
}

func TestRecordRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "failed"+ext)
			rec := sampleRecord()
			require.NoError(t, Save(path, rec))

			loaded, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, rec.Suite, loaded.Suite)
			assert.Equal(t, rec.RunID, loaded.RunID)
			require.Len(t, loaded.IDs, len(rec.IDs))
			for i := range rec.IDs {
				assert.Equal(t, rec.IDs[i].Key(), loaded.IDs[i].Key())
			}
			assert.False(t, loaded.IDs[2].Stable())
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failed.txt")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported record format")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadDefaultsForOlderRecords(t *testing.T) {
	// No discriminator, no isStable: the pre-existing behavior applies.
	raw := `{"cases":[{"argumentIDs":[{"bytes":"c2V2ZW4="}]}]}`
	path := filepath.Join(t.TempDir(), "old.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rec.IDs, 1)
	assert.Equal(t, 0, rec.IDs[0].Discriminator)
	require.Len(t, rec.IDs[0].ArgumentIDs, 1)
	assert.True(t, rec.IDs[0].ArgumentIDs[0].Stable)
	assert.Equal(t, []byte("seven"), rec.IDs[0].ArgumentIDs[0].Bytes)
}

func TestLoadRejectsDuplicates(t *testing.T) {
	raw := `{"cases":[
		{"argumentIDs":[{"bytes":"YQ=="}],"discriminator":0},
		{"argumentIDs":[{"bytes":"YQ=="}],"discriminator":0}
	]}`
	path := filepath.Join(t.TempDir(), "dup.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate case ID")
}

func TestRecordSelection(t *testing.T) {
	rec := sampleRecord()
	sel := rec.Selection()

	assert.True(t, sel.Contains(stableID([]byte("seven"), 0)))
	assert.True(t, sel.Contains(stableID([]byte("seven"), 1)))
	assert.False(t, sel.Contains(stableID([]byte("seven"), 2)))
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.toml"), sampleRecord())
	require.Error(t, err)
}
