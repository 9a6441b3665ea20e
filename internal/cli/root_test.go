package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppd-dev/ppd/internal/cli"
	"github.com/ppd-dev/ppd/internal/config"
	"github.com/ppd-dev/ppd/internal/items"
)

// setupEnv isolates configuration and quiets logging.
func setupEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("PPD_HOME", home)
	t.Setenv("PPD_CONFIG", "")
	t.Setenv("PPD_PROJECT_DIR", "")
	t.Setenv("PPD_LOG_LEVEL", "error")
	t.Setenv("PPD_LOG_FORMAT", "")
	config.ResetGlobalConfigForTest()
	config.SetResolvedProjectDir("")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd("1.2.3")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeItems(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewRootCmd(t *testing.T) {
	root := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "ppd", root.Use)
	assert.Equal(t, "1.2.3", root.Version)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"explore", "items", "config"})

	for _, flag := range []string{"debug", "config", "project-dir"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestItemsCmd_Plain(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "items", "--count", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "index.ts"))
	assert.Equal(t, "item-0\tItem 0", lines[3])
	assert.Equal(t, "node_modules", lines[5])
}

func TestItemsCmd_JSONFromFiles(t *testing.T) {
	setupEnv(t)
	a := writeItems(t, "items:\n  - id: a\n    label: Alpha\n")
	b := writeItems(t, "items:\n  - id: b\n    disabled: true\n")

	out, err := execute(t, "items", "--items", a, "--items", b, "-o", "json")
	require.NoError(t, err)

	var got []items.Item
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Label)
	assert.Equal(t, "b", got[1].Label, "label defaults to the id")
	assert.True(t, got[1].Disabled)
}

func TestItemsCmd_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     func(t *testing.T) []string
		wantCode int
		wantIs   error
	}{
		{
			name:     "unsupported output",
			args:     func(*testing.T) []string { return []string{"items", "-o", "xml"} },
			wantCode: cli.ExitCodeInvalidInput,
		},
		{
			name: "duplicate ids across files",
			args: func(t *testing.T) []string {
				a := writeItems(t, "items:\n  - id: x\n")
				b := writeItems(t, "items:\n  - id: x\n")
				return []string{"items", "--items", a, "--items", b}
			},
			wantCode: cli.ExitCodeInvalidInput,
			wantIs:   items.ErrDuplicateID,
		},
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"items", "--items", filepath.Join(t.TempDir(), "nope.yaml")}
			},
			wantCode: cli.ExitCodeInvalidInput,
			wantIs:   os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t)
			_, err := execute(t, tt.args(t)...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestExploreCmd_NonInteractivePrintsItems(t *testing.T) {
	setupEnv(t)
	path := writeItems(t, "items:\n  - id: one\n  - id: two\n    placeholder: hint\n")

	out, err := execute(t, "explore", "--items", path, "--sides", "right,bottom")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\t(hint)\n", out)
}

func TestExploreCmd_InvalidSides(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "explore", "--sides", "sideways", "--count", "1")
	require.Error(t, err)
	assert.Equal(t, cli.ExitCodeInvalidInput, cli.ExitCode(err))
}

func TestConfigInit_Global(t *testing.T) {
	home := setupEnv(t)

	out, err := execute(t, "config", "init", "--global")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	_, err = execute(t, "config", "init", "--global")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--global", "--force")
	require.NoError(t, err)
}

func TestConfigInit_Project(t *testing.T) {
	setupEnv(t)
	project := t.TempDir()

	out, err := execute(t, "--project-dir", project, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created .gitignore")
	assert.FileExists(t, filepath.Join(project, ".ppd", "config.yaml"))
	assert.FileExists(t, filepath.Join(project, ".ppd", ".gitignore"))
}

func TestConfigValidate(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Resizable sides: right,bottom")
}

func TestConfigValidate_UnsupportedVersion(t *testing.T) {
	setupEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 2.0.0\n"), 0o600))

	_, err := execute(t, "--config", path, "config", "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnsupportedVersion)
	assert.Equal(t, cli.ExitCodeConfig, cli.ExitCode(err))
}

func TestConfigFlag_MissingFile(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "items")
	require.Error(t, err)
	assert.Equal(t, cli.ExitCodeConfig, cli.ExitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitCodeOK},
		{name: "generic", err: errors.New("boom"), want: cli.ExitCodeError},
		{name: "exit error", err: &cli.ExitError{Code: 7, Err: errors.New("x")}, want: 7},
		{name: "wrapped exit error", err: fmt.Errorf("outer: %w", &cli.ExitError{Code: 4}), want: 4},
		{name: "duplicate id", err: fmt.Errorf("load: %w", items.ErrDuplicateID), want: cli.ExitCodeInvalidInput},
		{name: "config version", err: fmt.Errorf("v: %w", config.ErrUnsupportedVersion), want: cli.ExitCodeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "exit code 5", (&cli.ExitError{Code: 5}).Error())
	assert.Equal(t, "bad", (&cli.ExitError{Code: 5, Err: errors.New("bad")}).Error())
}
