package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesboard/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := New(filepath.Join(t.TempDir(), "nested", "salesboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestStore_InsertAndListUploads(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	ids, err := st.InsertUploads([]model.Upload{
		{BatchID: "b1", Partition: "lubricants", OriginalName: "jan.xlsx", StoredPath: "/x/1-jan.xlsx", Size: 10, CreatedAt: base},
		{BatchID: "b1", Partition: "lubricants", OriginalName: "feb.xlsx", StoredPath: "/x/1-feb.xlsx", Size: 20, CreatedAt: base.Add(time.Minute)},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)

	ids, err = st.InsertUploads([]model.Upload{
		{BatchID: "b2", Partition: "petroleum", OriginalName: "mar.xlsx", StoredPath: "/y/2-mar.xlsx", Size: 30, CreatedAt: base.Add(2 * time.Minute)},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)

	all, err := st.ListUploads(UploadQueryOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "mar.xlsx", all[0].OriginalName)
	assert.True(t, all[0].CreatedAt.Equal(base.Add(2*time.Minute)))

	lub := "lubricants"
	filtered, err := st.ListUploads(UploadQueryOptions{Partition: &lub, Limit: 1})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "feb.xlsx", filtered[0].OriginalName)
	assert.Equal(t, int64(20), filtered[0].Size)

	n, err := st.CountUploads("petroleum")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_EmptyList(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	all, err := st.ListUploads(UploadQueryOptions{Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestStore_InsertUploadsIsAllOrNothing(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	// 触发器拒绝第二条记录
	_, err := st.db.Exec(`CREATE TRIGGER reject_bad BEFORE INSERT ON uploads
		WHEN NEW.original_name = 'bad.xlsx' BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	_, err = st.InsertUploads([]model.Upload{
		{BatchID: "b1", Partition: "lubricants", OriginalName: "ok.xlsx", StoredPath: "/x/ok.xlsx"},
		{BatchID: "b1", Partition: "lubricants", OriginalName: "bad.xlsx", StoredPath: "/x/bad.xlsx"},
	})
	require.Error(t, err)

	n, err := st.CountUploads("lubricants")
	require.NoError(t, err)
	assert.Zero(t, n)
}
