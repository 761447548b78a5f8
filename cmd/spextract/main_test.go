package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spextract/pkg/validator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckRange(t *testing.T) {
	out, err := execute(t, "check-range", "--values", "5,10", "--bound", "0,10", "--mode", "gele")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, err = execute(t, "check-range", "--values", "11", "--bound", "0,10", "--name", "gain")
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrOutOfRange)
	assert.Equal(t, "`gain` is out of range: 0 <= gain <= 10", err.Error())

	_, err = execute(t, "check-range", "--values", "1", "--bound", "0,1,2", "--mode", "gtlt")
	assert.ErrorIs(t, err, validator.ErrShapeMismatch)

	_, err = execute(t, "check-range", "--values", "1", "--bound", "0", "--mode", "between")
	assert.ErrorIs(t, err, validator.ErrValueDomain)

	_, err = execute(t, "check-range", "--bound", "0", "--mode", "gt", "--", "one")
	assert.Error(t, err)

	_, err = execute(t, "check-range", "--bound", "0", "--mode", "gt")
	assert.ErrorIs(t, err, errNoValues)
}

func TestCheckRange_NegativeNumbers(t *testing.T) {
	_, err := execute(t, "check-range", "--values", "1,-2,3", "--bound", "0", "--mode", "gt", "--name", "fwhm")
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrOutOfRange)
	assert.Equal(t, "`fwhm` is out of range: 0 < fwhm", err.Error())

	out, err := execute(t, "check-range", "--values", "-1", "--bound", "-5,0", "--mode", "gele")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	out, err = execute(t, "check-range", "--bound", "-5,0", "--mode", "gele", "--", "-1", "-3.5")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, err = execute(t, "check-range", "--values", "-6", "--bound=-5,0", "--mode", "gele")
	assert.ErrorIs(t, err, validator.ErrOutOfRange)
}

func TestCheckFilesAndPath(t *testing.T) {
	dir := t.TempDir()
	flat := filepath.Join(dir, "flat1-5.fits")
	require.NoError(t, os.WriteFile(flat, nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spc00001.a.fits"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spc00001.b.fits"), nil, 0o644))

	out, err := execute(t, "check-files", filepath.Join(dir, "flat*.fits"))
	require.NoError(t, err)
	assert.Equal(t, flat+"\n", out)

	_, err = execute(t, "check-files", filepath.Join(dir, "spc00001.*.fits"))
	assert.ErrorIs(t, err, validator.ErrAmbiguousFile)

	_, err = execute(t, "check-files", filepath.Join(dir, "wavecal*.fits"))
	assert.ErrorIs(t, err, validator.ErrFileNotFound)

	out, err = execute(t, "check-path", dir, "--absolute")
	require.NoError(t, err)
	assert.Equal(t, dir+"\n", out)

	_, err = execute(t, "check-path", filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, validator.ErrPathNotFound)
}

func TestPlan(t *testing.T) {
	t.Setenv("SPEX_STORE_DRIVER", "none")

	out, err := execute(t, "plan", "1-4")
	require.NoError(t, err)
	assert.Contains(t, out, "reduction mode: A-B")
	assert.Contains(t, out, "subsets: 2")
	assert.Contains(t, out, "  2: spc00003.fits, spc00004.fits")

	_, err = execute(t, "plan", "1-3")
	assert.Error(t, err)
}

func TestPlan_ConfigLayers(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "reduce.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
file_read_mode: filename
reduction_mode: A
trace:
  fwhm: 1.2
`), 0o644))

	out, err := execute(t, "plan", "a.fits,b.fits,c.fits", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "reduction mode: A\n")
	assert.Contains(t, out, "subsets: 3")

	t.Setenv("SPEX_TRACE_FWHM", "0")
	_, err = execute(t, "plan", "a.fits", "--config", cfgFile)
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)

	_, err = execute(t, "plan", "a.fits", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, validator.ErrPathNotFound)
}

func TestPlan_DryRunSavesReport(t *testing.T) {
	t.Setenv("SPEX_STORE_DRIVER", "local")
	t.Setenv("SPEX_STORE_LOCAL_DIR", t.TempDir())

	out, err := execute(t, "plan", "1-2", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, ": completed (1/1 subsets)")
	assert.Contains(t, out, "report: ")

	out, err = execute(t, "runs")
	require.NoError(t, err)
	ids := strings.Fields(out)
	require.Len(t, ids, 1)

	out, err = execute(t, "runs", "show", ids[0])
	require.NoError(t, err)
	assert.Contains(t, out, "run "+ids[0]+": completed")
	assert.Contains(t, out, "1: spc00001.fits, spc00002.fits (7 stages)")
}

func TestRuns_StorageDisabled(t *testing.T) {
	t.Setenv("SPEX_STORE_DRIVER", "none")
	_, err := execute(t, "runs")
	assert.ErrorIs(t, err, errNoStorage)

	t.Setenv("SPEX_STORE_DRIVER", "tape")
	_, err = execute(t, "runs")
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestLogFlags(t *testing.T) {
	_, err := execute(t, "check-path", ".", "--log-format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "check-path", ".", "--log-level", "loud")
	assert.Error(t, err)
}
