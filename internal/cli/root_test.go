package cli

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/iconbanner/internal/assets"
	"github.com/rook-computer/iconbanner/internal/errors"
)

func writeIcon(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func run(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(Options{
		Version: "v0.0.0-test",
		Stdout:  &stdout,
		Stderr:  &stderr,
		LookupEnv: func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		},
	})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootRendersDerivedOutputs(t *testing.T) {
	dir := t.TempDir()
	in1 := filepath.Join(dir, "icon1.png")
	in2 := filepath.Join(dir, "icon2.png")
	writeIcon(t, in1, 60)
	writeIcon(t, in2, 60)

	stdout, _, err := run(t, nil, "--text", "BETA", "--height", "20", "--padding", "4", in1, in2)
	require.NoError(t, err)

	out1 := filepath.Join(dir, "icon1_beta.png")
	out2 := filepath.Join(dir, "icon2_beta.png")
	assert.FileExists(t, out1)
	assert.FileExists(t, out2)
	assert.Equal(t, out1+"\n"+out2+"\n", stdout)
}

func TestRootExplicitOutputsAndEnv(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "icon.png")
	writeIcon(t, in, 60)
	out := filepath.Join(dir, "build", "icon-dev.png")

	_, _, err := run(t, map[string]string{"ICONBANNER_TEXT": "DEV"}, "-o", out, in)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestRootMismatchedOutputs(t *testing.T) {
	dir := t.TempDir()
	in1 := filepath.Join(dir, "icon1.png")
	in2 := filepath.Join(dir, "icon2.png")
	writeIcon(t, in1, 60)
	writeIcon(t, in2, 60)

	_, _, err := run(t, nil, "-o", filepath.Join(dir, "only.png"), in1, in2)
	assert.Equal(t, errors.ErrCodeConfiguration, errors.CodeOf(err))
}

func TestRootValidationError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "icon.png")
	writeIcon(t, in, 60)

	_, _, err := run(t, nil, "--height=-2", in)
	assert.Equal(t, errors.ErrCodeValidation, errors.CodeOf(err))
}

func TestRootRejectsNonFiniteNumbers(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "icon.png")
	writeIcon(t, in, 60)

	for _, args := range [][]string{
		{"--height", "NaN"},
		{"--padding", "NaN"},
		{"--height", "+Inf"},
		{"--size", "NaNxNaN"},
		{"--banner-size", "InfxInf"},
	} {
		_, _, err := run(t, nil, append(args, in)...)
		assert.Equal(t, errors.ErrCodeValidation, errors.CodeOf(err), "%v", args)
	}

	_, _, err := run(t, map[string]string{"ICONBANNER_HEIGHT": "NaN"}, in)
	assert.Equal(t, errors.ErrCodeValidation, errors.CodeOf(err))
	assert.NoFileExists(t, filepath.Join(dir, "icon_beta.png"))
}

func TestRootStdioLogReceivesLogs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "icon.png")
	writeIcon(t, in, 60)
	logPath := filepath.Join(dir, "stdio.log")

	origOut, origErr := os.Stdout, os.Stderr
	t.Cleanup(func() { os.Stdout, os.Stderr = origOut, origErr })

	var logFile *os.File
	cmd := NewRootCommand(Options{
		Version:   "v0.0.0-test",
		LookupEnv: func(string) (string, bool) { return "", false },
		RedirectStdIO: func(path string) error {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return err
			}
			logFile = f
			os.Stdout, os.Stderr = f, f
			return nil
		},
	})
	cmd.SetArgs([]string{"--stdio-log", logPath, in})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.NotNil(t, logFile)
	require.NoError(t, logFile.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rendered 1 icon(s)")
	assert.Contains(t, string(data), filepath.Join(dir, "icon_beta.png"))
}

func TestRootDryRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "icon.png")

	stdout, _, err := run(t, nil, "--dry-run", "--suffix=-dev", in)
	require.NoError(t, err)
	assert.Equal(t, in+" -> "+filepath.Join(dir, "icon-dev.png")+"\n", stdout)
	assert.NoFileExists(t, filepath.Join(dir, "icon-dev.png"))
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "icon.png")
	writeIcon(t, in, 60)
	cfgPath := filepath.Join(dir, "banner.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("text: QA\nicons:\n  - input: "+in+"\n"), 0o644))

	stdout, _, err := run(t, nil, "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "icon_qa.png")+"\n", stdout)
}

func TestRootUnknownFont(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "icon.png")
	writeIcon(t, in, 60)

	_, stderr, err := run(t, nil, "--font", "Marker Felt", in)
	assert.Equal(t, errors.ErrCodeRender, errors.CodeOf(err))
	assert.Contains(t, stderr, "level=ERROR")

	_, _, err = run(t, nil, "--font", "Marker Felt", "--font-fallback", in)
	assert.NoError(t, err)
}

func TestFontsCommand(t *testing.T) {
	stdout, _, err := run(t, nil, "fonts")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, len(assets.Names()))
	assert.Contains(t, lines, assets.DefaultFont+" (default)")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "iconbanner v0.0.0-test\n", stdout)
}
