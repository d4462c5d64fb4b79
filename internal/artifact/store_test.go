package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PutOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.md")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "ignored", []byte("# first\n")))
	require.NoError(t, s.Put(ctx, "ignored", []byte("# second\n")))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "# second\n", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "report.md", entries[0].Name())
}

func TestFileStore_PutFailsOnDirectory(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Error(t, s.Put(context.Background(), "", []byte("x")))
}

func TestNewFileStore_EmptyPath(t *testing.T) {
	_, err := NewFileStore("  ")
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "b.md", []byte("B")))
	require.NoError(t, s.Put(ctx, "a.md", []byte("A")))
	assert.Error(t, s.Put(ctx, " ", []byte("x")))

	got, err := s.Get(ctx, "a.md")
	require.NoError(t, err)
	assert.Equal(t, "A", string(got))
	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"a.md", "b.md"}, s.List(ctx))
}

type failingStore struct{ err error }

func (f failingStore) Put(context.Context, string, []byte) error { return f.err }

func TestTee_StopsOnFirstError(t *testing.T) {
	first, last := NewMemoryStore(), NewMemoryStore()
	boom := errors.New("boom")
	err := Tee{first, nil, failingStore{boom}, last}.Put(context.Background(), "r.md", []byte("x"))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"r.md"}, first.List(context.Background()))
	assert.Empty(t, last.List(context.Background()))
}

func TestReportName(t *testing.T) {
	assert.Equal(t, "AbC/1-1099.md", ReportName(" AbC ", "1:1099"))
	assert.Equal(t, "reports/AbC/1-2.md", objectKey("reports", "/AbC/1-2.md"))
	assert.Equal(t, "AbC/1-2.md", objectKey("", "AbC/1-2.md"))
}

func TestNewS3Store_Validation(t *testing.T) {
	_, err := NewS3Store(S3Config{})
	assert.ErrorContains(t, err, "endpoint")
	_, err = NewS3Store(S3Config{Endpoint: "localhost:9000"})
	assert.ErrorContains(t, err, "access key")
	_, err = NewS3Store(S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"})
	assert.ErrorContains(t, err, "bucket")

	s, err := NewS3Store(S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", Bucket: "reports", Prefix: "/design/"})
	require.NoError(t, err)
	assert.Equal(t, "design", s.prefix)
	assert.Equal(t, "us-east-1", s.region)
}
