package validator_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spextract/pkg/validator"
)

func TestCheckPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("existing path is returned unchanged", func(t *testing.T) {
		got, err := validator.CheckPath(dir, false)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("missing path fails", func(t *testing.T) {
		_, err := validator.CheckPath(filepath.Join(dir, "nope"), false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrPathNotFound))
	})

	t.Run("make absolute", func(t *testing.T) {
		got, err := validator.CheckPath(".", true)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestCheckPath_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.Mkdir(filepath.Join(home, "cals"), 0o755))

	got, err := validator.CheckPath("~/cals", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "cals"), got)
}

func TestCheckFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"spc00001.a.fits", "spc00002.b.fits", "flat1-5.fits"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SIMPLE"), 0o644))
	}

	t.Run("resolves wildcards to a single file", func(t *testing.T) {
		got, err := validator.CheckFiles(filepath.Join(dir, "flat*.fits"), filepath.Join(dir, "spc00001.a.fits"))
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "flat1-5.fits"),
			filepath.Join(dir, "spc00001.a.fits"),
		}, got)
	})

	t.Run("no match fails", func(t *testing.T) {
		_, err := validator.CheckFiles(filepath.Join(dir, "wavecal*.fits"))
		assert.True(t, errors.Is(err, validator.ErrFileNotFound))
	})

	t.Run("several matches fail", func(t *testing.T) {
		_, err := validator.CheckFiles(filepath.Join(dir, "spc*.fits"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrAmbiguousFile))
		assert.Contains(t, err.Error(), "2 matches")
	})
}
