package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machinereport/config"
	"machinereport/layout"
)

func TestVersionOutput(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	defer func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	}()

	version = "1.2.3"
	commit = "abc1234"
	date = "2026-10-19T12:00:00Z"

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "machine-report v1.2.3")
	assert.Contains(t, output, "commit: abc1234")
	assert.Contains(t, output, "built: 2026-10-19T12:00:00Z")
	assert.Contains(t, output, "go: "+runtime.Version())
	assert.Contains(t, output, "os/arch: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionOutputShort(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()
	version = "1.2.3"

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version", "--short"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "1.2.3", strings.TrimSpace(buf.String()))
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.0.0", "v1.0.0"},
		{"v2.1.0", "v2.1.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatVersion(tt.in))
	}
}

func TestSelectTheme(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, "plain", selectTheme(config.ThemePlain, &buf).Name)
	assert.Equal(t, "plain", selectTheme(config.ThemeAuto, &buf).Name, "a buffer is not a terminal")

	colored := selectTheme(config.ThemeColor, &buf)
	assert.Equal(t, "color", colored.Name)
	assert.Contains(t, colored.Label("OS"), "\x1b[")
}

func TestMeasureFor(t *testing.T) {
	// the heuristic counts CJK as one column, the exact table as two
	assert.Equal(t, 2, measureFor(config.WidthHeuristic)("日本"))
	assert.Equal(t, 4, measureFor(config.WidthExact)("日本"))
	assert.Equal(t, layout.DisplayWidth("┌─┐"), measureFor("")("┌─┐"))
}

func TestSubcommands(t *testing.T) {
	cmd := newRootCmd()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "snapshot")
	assert.NoError(t, cmd.Args(cmd, []string{"extra", "args"}), "stray arguments are ignored")
}
