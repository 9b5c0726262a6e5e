package manifest_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/byte4ever/manifest_tools/digest"
	"github.com/byte4ever/manifest_tools/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_digests_regular_files(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"data.csv": &fstest.MapFile{
			Data: []byte("a,b\n1,2\n"),
		},
		"notes.txt": &fstest.MapFile{
			Data: []byte("hello"),
		},
	}

	mf, err := manifest.Generate(fsys, nil)

	require.NoError(t, err)
	require.Len(t, mf.Entries, 2)

	en, ok := mf.Lookup("data.csv")
	require.True(t, ok)
	assert.Equal(
		t, digest.Bytes([]byte("a,b\n1,2\n")), en.Digest,
	)
}

func TestGenerate_applies_exclusions(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"data.csv":     &fstest.MapFile{Data: []byte("x")},
		"README.md":    &fstest.MapFile{Data: []byte("doc")},
		"index.html":   &fstest.MapFile{Data: []byte("<html>")},
		"checksums.sh": &fstest.MapFile{Data: []byte("#!/bin/sh")},
		manifest.Name:  &fstest.MapFile{Data: []byte("old")},
	}

	mf, err := manifest.Generate(
		fsys, manifest.DefaultExclusions,
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"data.csv"}, mf.Paths())
}

func TestGenerate_empty_directory(t *testing.T) {
	t.Parallel()

	mf, err := manifest.Generate(
		fstest.MapFS{}, manifest.DefaultExclusions,
	)

	require.NoError(t, err)
	assert.Empty(t, mf.Entries)
}

func TestGenerate_only_excluded_files(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"README.md": &fstest.MapFile{Data: []byte("doc")},
	}

	mf, err := manifest.Generate(
		fsys, manifest.DefaultExclusions,
	)

	require.NoError(t, err)
	assert.Empty(t, mf.Entries)
}

func TestGenerate_skips_directories_and_symlinks(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"data.csv": &fstest.MapFile{Data: []byte("x")},
		"figs/plot.png": &fstest.MapFile{
			Data: []byte("png"),
		},
		"link.csv": &fstest.MapFile{
			Mode: fs.ModeSymlink,
			Data: []byte("data.csv"),
		},
	}

	mf, err := manifest.Generate(fsys, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"data.csv"}, mf.Paths())
}

func TestGenerate_output_is_sorted(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"c.csv": &fstest.MapFile{Data: []byte("c")},
		"a.csv": &fstest.MapFile{Data: []byte("a")},
		"b.csv": &fstest.MapFile{Data: []byte("b")},
	}

	mf, err := manifest.Generate(fsys, nil)

	require.NoError(t, err)
	assert.Equal(
		t, []string{"a.csv", "b.csv", "c.csv"}, mf.Paths(),
	)
}
