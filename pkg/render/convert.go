package render

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/matzehuels/geograph/pkg/errors"
)

// PSToPDF converts a PostScript document to PDF using ps2pdf.
// Requires ghostscript: brew install ghostscript (macOS), apt install ghostscript (Linux).
func PSToPDF(ctx context.Context, ps []byte) ([]byte, error) {
	return convert(ctx, ps, "ps2pdf", ghostscriptHint, "-", "-")
}

const ghostscriptHint = "Install with:\n  macOS:  brew install ghostscript\n  Linux:  apt install ghostscript"

// convert pipes input through an external converter and returns its stdout.
func convert(ctx context.Context, input []byte, tool, hint string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(tool); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s is not installed. %s", tool, hint)
	}

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdin = bytes.NewReader(input)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "%s: %s", tool, errBuf.String())
	}
	return out.Bytes(), nil
}
