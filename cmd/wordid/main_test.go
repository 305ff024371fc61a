package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "wordid.yaml")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func TestEncode(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "42"}, "The giant gorilla\n"},
		{[]string{"encode", "-compact", "42"}, "giant-gorilla\n"},
		{[]string{"encode", "103505039"}, "The brave fox jumps swiftly\n"},
		{[]string{"encode", "-compact", "0"}, "light-gorilla\n"},
		{[]string{"encode", "-punk", "18446744073709551615"},
			"Agree It, Admire It\nOwn It, Accept It\nActive, Absent\nLocal, Able\nAbly!\n"},
		{[]string{"encode", "-compact", "81985529216486895"},
			"loose-thin-coyote-searches-cleanly-beside-late-goose-after-stiff-bull\n"},
	}
	for _, tt := range tests {
		code, out, errout := runCommand(t, tt.args...)
		require.Equal(t, 0, code, "%v: %s", tt.args, errout)
		require.Equal(t, tt.want, out, "%v", tt.args)
	}
}

func TestEncodeWide(t *testing.T) {
	code, out, _ := runCommand(t, "encode", "340282366920938463463374607431768211455")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(out, "The active anchor agrees absently"), out)
}

func TestEncodeErrors(t *testing.T) {
	for _, args := range [][]string{
		{"encode"},
		{"encode", "12x"},
		{"encode", "-5"},
		{"encode", "+5"},
		{"encode", "340282366920938463463374607431768211456"},
		{"encode", "1", "2"},
		{"frobnicate"},
		{},
	} {
		code, out, errout := runCommand(t, args...)
		require.Equal(t, 1, code, "%v", args)
		require.Empty(t, out)
		require.NotEmpty(t, errout, "%v", args)
	}
}

func TestDecode(t *testing.T) {
	code, out, errout := runCommand(t, "decode", "the", "brave", "fox", "jumps", "swiftly")
	require.Equal(t, 0, code, errout)
	require.Equal(t, "103505039\n", out)

	code, out, _ = runCommand(t, "decode", "Agree It, Admire It\nOwn It, Accept It\nActive, Absent\nLocal, Able\nAbly!")
	require.Equal(t, 0, code)
	require.Equal(t, "18446744073709551615\n", out)
}

func TestDecodeSuggestions(t *testing.T) {
	code, out, errout := runCommand(t, "decode", "the bravx fox")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, errout, "did you mean")
	require.Contains(t, errout, "brave")
	require.Contains(t, errout, `"bravx"`)
}

func TestDecodeErrors(t *testing.T) {
	for _, args := range [][]string{
		{"decode"},
		{"decode", "the light"},
		{"decode", strings.Repeat("fox ", 40)},
	} {
		code, _, errout := runCommand(t, args...)
		require.Equal(t, 1, code, "%v", args)
		require.True(t, strings.HasPrefix(errout, "wordid: "), errout)
	}
}

func TestSchemes(t *testing.T) {
	code, out, _ := runCommand(t, "schemes")
	require.Equal(t, 0, code)
	for _, s := range []string{
		"adjective-noun", "simple-phrase", "punk", "complex-phrase",
		"65,536", "18,446,744,073,709,551,616",
		"340,282,366,920,938,463,463,374,607,431,768,211,456",
		"adjective", "preposition", "pronoun",
	} {
		require.Contains(t, out, s)
	}
}

func TestConfigFile(t *testing.T) {
	name := writeConfig(t, "style: compact\npunk: true\n")
	code, out, _ := runCommand(t, "-config", name, "encode", "42")
	require.Equal(t, 0, code)
	require.Equal(t, "giant-gorilla\n", out)

	// flags override the file
	code, out, _ = runCommand(t, "-config", name, "encode", "-compact=false", "42")
	require.Equal(t, 0, code)
	require.Equal(t, "The giant gorilla\n", out)

	code, out, _ = runCommand(t, "-config", name, "encode", "4294967296")
	require.Equal(t, 0, code)
	require.Equal(t, 13, len(strings.Split(strings.TrimSpace(out), "-")))
}

func TestConfigErrors(t *testing.T) {
	for _, content := range []string{
		"style: fancy\n",
		"trace: verbose\n",
		"colour: blue\n",
		"style: [natural\n",
	} {
		name := writeConfig(t, content)
		code, _, errout := runCommand(t, "-config", name, "schemes")
		require.Equal(t, 1, code, content)
		require.Contains(t, errout, "config", content)
	}
	code, _, _ := runCommand(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"), "schemes")
	require.Equal(t, 1, code)
	code, _, _ = runCommand(t, "-trace", "loud", "schemes")
	require.Equal(t, 1, code)
}

func TestTraceOutput(t *testing.T) {
	code, _, errout := runCommand(t, "-trace", "debug", "decode", "light-gorilla-orders-kindly")
	require.Equal(t, 0, code)
	require.Contains(t, errout, "simple-phrase")
}

func TestSetupTracing(t *testing.T) {
	var buf bytes.Buffer
	setupTracing("info", &buf)
	tracing.Select("wordid").Infof("visible")
	tracing.Select("other").Debugf("hidden")
	require.Contains(t, buf.String(), "visible")
	require.NotContains(t, buf.String(), "hidden")
	require.Equal(t, tracing.LevelInfo, tracing.Select("any").GetTraceLevel())
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := ConfigFromFile("")
	require.NoError(t, err)
	require.Equal(t, &Config{Style: "natural", Trace: "error"}, cfg)

	cfg, err = ConfigFromFile(writeConfig(t, "trace: debug\n"))
	require.NoError(t, err)
	require.Equal(t, "natural", cfg.Style)
	require.Equal(t, "debug", cfg.Trace)
}
