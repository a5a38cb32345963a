package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorCreateFlow(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	editor := NewEditor(store)

	require.NoError(t, editor.Open(nil))
	require.NoError(t, editor.SetPath("new.png"))
	require.NoError(t, editor.SetWindow(strptr("9"), strptr("0"), strptr("10"), strptr("30")))
	require.NoError(t, editor.SetWeekDays([]int{1, 3}))

	require.NoError(t, editor.Commit(ctx))

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "new.png", *entries[0].Path)
	assert.Equal(t, []int{1, 3}, entries[0].WeekDays)

	// Commit closes the session.
	_, _, open := editor.Buffer()
	assert.False(t, open)
}

func TestEditorEditExistingEntry(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Add(ctx, entry("a.png", "9", "0", "10", "0", 1)))
	editor := NewEditor(store)

	require.NoError(t, editor.Open(intptr(0)))
	buffer, index, open := editor.Buffer()
	require.True(t, open)
	require.NotNil(t, index)
	assert.Equal(t, 0, *index)
	assert.Equal(t, "a.png", *buffer.Path)

	require.NoError(t, editor.SetWindow(nil, nil, strptr("11"), strptr("15")))
	require.NoError(t, editor.Commit(ctx))

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "11", *entries[0].HoursEnd)
	assert.Equal(t, "15", *entries[0].MinutesEnd)
	// Untouched fields survive the edit.
	assert.Equal(t, "9", *entries[0].HoursStart)
}

func TestEditorEmptyPathMeansNoChange(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Add(ctx, entry("keep.png", "9", "0", "10", "0", 1)))
	editor := NewEditor(store)

	require.NoError(t, editor.Open(intptr(0)))
	// Picker cancelled: empty result leaves the path alone.
	require.NoError(t, editor.SetPath(""))
	require.NoError(t, editor.Commit(ctx))

	assert.Equal(t, "keep.png", *store.Entries()[0].Path)
}

func TestEditorBufferDoesNotAliasStore(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Add(ctx, entry("a.png", "9", "0", "10", "0", 1)))
	editor := NewEditor(store)

	require.NoError(t, editor.Open(intptr(0)))
	require.NoError(t, editor.SetPath("changed.png"))
	editor.Discard()

	assert.Equal(t, "a.png", *store.Entries()[0].Path)
}

func TestEditorFailedCommitKeepsBufferOpen(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Add(ctx, entry("a.png", "10", "0", "11", "0", 1)))
	editor := NewEditor(store)

	require.NoError(t, editor.Open(nil))
	require.NoError(t, editor.SetPath("a.png"))
	require.NoError(t, editor.SetWindow(strptr("10"), strptr("0"), strptr("12"), strptr("0")))
	require.NoError(t, editor.SetWeekDays([]int{6}))

	assert.ErrorIs(t, editor.Commit(ctx), ErrDuplicate)

	// Still open: the user can fix the start time and retry.
	_, _, open := editor.Buffer()
	require.True(t, open)
	require.NoError(t, editor.SetWindow(strptr("10"), strptr("30"), nil, nil))
	require.NoError(t, editor.Commit(ctx))
	assert.Equal(t, 2, store.Len())
}

func TestEditorOperationsRequireOpenSession(t *testing.T) {
	store, _ := newTestStore(t)
	editor := NewEditor(store)

	assert.ErrorIs(t, editor.SetPath("x.png"), ErrNoOpenEditor)
	assert.ErrorIs(t, editor.SetWeekDays([]int{1}), ErrNoOpenEditor)
	assert.ErrorIs(t, editor.Commit(context.Background()), ErrNoOpenEditor)
	// Discard is always safe.
	editor.Discard()
}

func TestEditorOpenBadIndex(t *testing.T) {
	store, _ := newTestStore(t)
	editor := NewEditor(store)
	assert.ErrorIs(t, editor.Open(intptr(3)), ErrIndexOutOfRange)
	_, _, open := editor.Buffer()
	assert.False(t, open)
}
