package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truestock/truestock/internal/adapters/inbound/cli"
	"github.com/truestock/truestock/internal/adapters/outbound/config"
)

// run executes the root command against an empty config directory and
// returns stdout. Global flags go first so mutation commands see every
// argument, negative numbers included, as a value.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runIn(t, t.TempDir(), "", args...)
}

func runIn(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--path", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0644))
	return dir
}
