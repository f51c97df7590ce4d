package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/provenlab/provhash/pkg/cli"
	"github.com/provenlab/provhash/pkg/log"
	"github.com/stretchr/testify/require"
)

func TestReadUserConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
float_precision: 6
ignore_names:
  - .cache
  - _scratch
log_json: true
`), 0o644))

	cfg, err := cli.ReadUserConfig(path)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.FloatPrecision)
	require.Equal(t, []string{".cache", "_scratch"}, cfg.IgnoreNames)
	require.True(t, cfg.LogJSON)
}

func TestReadUserConfigExplicitMissing(t *testing.T) {
	_, err := cli.ReadUserConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestReadUserConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("float_precision: [not an int\n"), 0o644))
	_, err := cli.ReadUserConfig(path)
	require.Error(t, err)
}

// runWithConfig executes the CLI with a real --config file instead of an
// injected UserConfig.
func runWithConfig(t *testing.T, cfgPath, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	deps := &cli.Deps{
		In:     strings.NewReader(stdin),
		Out:    &out,
		Err:    &bytes.Buffer{},
		Logger: log.NewNop(),
	}
	cmd := cli.NewRootCmd(deps)
	cmd.SetArgs(append(args, "--config", cfgPath))
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return strings.TrimSpace(out.String())
}

func TestConfigPrecisionApplies(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("float_precision: 6\n"), 0o644))

	a := runWithConfig(t, cfgPath, `1.0000000001`, "hash")
	b := runWithConfig(t, cfgPath, `1.0`, "hash")
	require.Equal(t, a, b, "configured precision must round the difference away")
}

func TestConfigIgnoreNamesApply(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ignore_names: [.cache]\n"), 0o644))

	dir := t.TempDir()
	writeFile(t, dir, "data.txt", "payload")
	before := runWithConfig(t, cfgPath, "", "dir", dir)

	writeFile(t, dir, ".cache", "scratch")
	require.Equal(t, before, runWithConfig(t, cfgPath, "", "dir", dir))
}
