package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellCommand_StateSurvivesAcrossLines(t *testing.T) {
	script := strings.Join([]string{
		`add m002 monitor "LG 27 inch" 18000 4`,
		`reserve L001 3`,
		`reserve L001 5`,
		`search --name "lg 27"`,
		`exit`,
		`remove M002`,
	}, "\n")

	out, err := runIn(t, t.TempDir(), script, "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "Product added successfully!")
	assert.Contains(t, out, "LG 27 inch")
	assert.Contains(t, out, "Reserved successfully!")
	assert.Contains(t, out, "Not enough stock for product ID: L001")
	assert.NotContains(t, out, "Product removed successfully!")
}

func TestShellCommand_ErrorsDoNotEndSession(t *testing.T) {
	script := "remove Z9\nbogus\n'unterminated\nrestock K001 5\nquit\n"

	out, err := runIn(t, t.TempDir(), script, "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "Product with ID Z9 not found!")
	assert.Contains(t, out, "unbalanced quotes")
	assert.Contains(t, out, "Restocked successfully!")
}

func TestShellCommand_RejectsTerminalCommands(t *testing.T) {
	out, err := runIn(t, t.TempDir(), "shell\nserve --addr :0\nmcp serve\nreserve L001 1\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "shell is not available inside the shell")
	assert.Contains(t, out, "serve is not available inside the shell")
	assert.Contains(t, out, "mcp is not available inside the shell")
	assert.Contains(t, out, "Reserved successfully!")
}

func TestShellCommand_NegativeQuantity(t *testing.T) {
	out, err := runIn(t, t.TempDir(), "restock K001 -1\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "Quantity must be greater than 0!")
	assert.NotContains(t, out, "unknown shorthand flag")
}

func TestShellCommand_EndsAtEOF(t *testing.T) {
	out, err := runIn(t, t.TempDir(), "", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "truestock> ")
}
