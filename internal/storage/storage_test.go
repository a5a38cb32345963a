package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/frameloop/internal/model"
)

func sampleEntries() []model.Media {
	path := "a.png"
	hs, ms, he, me := "9", "0", "10", "30"
	return []model.Media{{
		Path:         &path,
		WeekDays:     []int{1, 5},
		HoursStart:   &hs,
		MinutesStart: &ms,
		HoursEnd:     &he,
		MinutesEnd:   &me,
	}}
}

func TestCodecRoundTrip(t *testing.T) {
	data, err := Encode(sampleEntries())
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), decoded)
}

func TestEncodeStampsSchemaVersion(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf(`{"version":%d,"entries":[]}`, SchemaVersion), string(data))
}

func TestDecodeAcceptsLegacyBareArray(t *testing.T) {
	decoded, err := Decode([]byte(`[{"path":"old.png","week_days":[2],"hours_start":"8","minutes_start":"15","hours_end":"9","minutes_end":"0"}]`))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "old.png", *decoded[0].Path)
}

func TestDecodeRejectsGarbageAndFutureVersions(t *testing.T) {
	_, err := Decode([]byte("{oops"))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"version":99,"entries":[]}`))
	assert.Error(t, err)
}

func TestFileBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := NewFileBackend(filepath.Join(t.TempDir(), "schedule.json"))

	_, err := backend.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, backend.Save(ctx, sampleEntries()))
	loaded, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), loaded)

	// Whole-document replace: a second save fully overwrites.
	require.NoError(t, backend.Save(ctx, nil))
	loaded, err = backend.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileBackendCreatesParentDirectories(t *testing.T) {
	ctx := context.Background()
	backend := NewFileBackend(filepath.Join(t.TempDir(), "nested", "dir", "schedule.json"))

	require.NoError(t, backend.Save(ctx, sampleEntries()))
	loaded, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestMemoryBackendRoundTripAndFailure(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	_, err := backend.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, backend.Save(ctx, sampleEntries()))
	loaded, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), loaded)

	backend.FailSaves = fmt.Errorf("boom")
	assert.Error(t, backend.Save(ctx, nil))

	// The previous document is still intact.
	loaded, err = backend.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}
