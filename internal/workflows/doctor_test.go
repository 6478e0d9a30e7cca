package workflows

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCheck(t *testing.T, result *DoctorResult, name string) CheckResult {
	t.Helper()
	for _, c := range result.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q not found", name)
	return CheckResult{}
}

func TestDoctorHealthyLayout(t *testing.T) {
	env := unlockedEnv(t, "pw")
	_, err := AddNote(context.Background(), env, AddNoteOptions{Name: "a", Text: "x"})
	require.NoError(t, err)

	result, err := Doctor(context.Background(), env, DoctorOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.Errors)
	assert.Equal(t, 0, result.Summary.Warnings)
	assert.Equal(t, len(result.Checks), result.Summary.Passed)
	assert.Empty(t, result.Suggestions)
}

func TestDoctorMissingDirectoriesAndPassword(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.RemoveAll(env.Settings.KeyDir))

	result, err := Doctor(context.Background(), env, DoctorOptions{})
	require.NoError(t, err)

	assert.Equal(t, CheckError, findCheck(t, result, "Key directory").Status)
	assert.Equal(t, CheckWarning, findCheck(t, result, "Password").Status)
	assert.NotEmpty(t, result.Suggestions)
}

func TestDoctorMultiLinePassword(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.Credentials.Path(), []byte("one\ntwo\n"), 0600))

	result, err := Doctor(context.Background(), env, DoctorOptions{})
	require.NoError(t, err)
	assert.Equal(t, CheckWarning, findCheck(t, result, "Password").Status)
}

func TestDoctorStrayFiles(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.Settings.NotesDir, "todo.md"), []byte("x\n"), 0600))

	result, err := Doctor(context.Background(), env, DoctorOptions{})
	require.NoError(t, err)
	check := findCheck(t, result, "Stray files")
	assert.Equal(t, CheckWarning, check.Status)
	assert.Contains(t, check.Message, "todo.md")
}

func TestDoctorResultJSON(t *testing.T) {
	env := newTestEnv(t)
	result, err := Doctor(context.Background(), env, DoctorOptions{})
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"pass"`)
}

func TestCheckStatusString(t *testing.T) {
	assert.Equal(t, "pass", CheckPass.String())
	assert.Equal(t, "warning", CheckWarning.String())
	assert.Equal(t, "error", CheckError.String())
	assert.Equal(t, "unknown", CheckStatus(42).String())
}
