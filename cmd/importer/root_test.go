package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImporterCmd_DryRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendors.json"), []byte(`[{"id":"vend-1"},{"name":"no id"}]`), 0o600))

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dir", dir, "--dry-run"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 document(s) skipped")

	assert.Contains(t, out.String(), "vendors")
	assert.Contains(t, out.String(), `skipped vendors.json[1]: missing "id"`)
	assert.Contains(t, out.String(), "dry run: nothing was written")
}

func TestImporterCmd_RequiresDir(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dry-run"})

	require.Error(t, cmd.Execute())
}
