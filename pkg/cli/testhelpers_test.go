package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/provenlab/provhash/pkg/cli"
	"github.com/provenlab/provhash/pkg/log"
)

// runCLI executes the root command with injected streams and a quiet logger.
// stdin may be empty. Returns captured stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	deps := &cli.Deps{
		In:     strings.NewReader(stdin),
		Out:    &out,
		Err:    &bytes.Buffer{},
		Logger: log.NewNop(),
		Config: &cli.UserConfig{},
	}
	cmd := cli.NewRootCmd(deps)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// digestLine asserts the output is exactly one 64-char hex digest line.
func digestLine(t *testing.T, out string) string {
	t.Helper()
	line := strings.TrimSpace(out)
	if len(line) != 64 {
		t.Fatalf("expected a 64-char digest line, got %q", out)
	}
	return line
}
