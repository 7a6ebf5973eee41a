// Package staging copies a job's landscape and weather inputs into a
// per-job directory before submission.
package staging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vk/embergrid/internal/ctxlog"
	"github.com/vk/embergrid/internal/params"
)

// Stage copies the five input files named by the run parameters into a new
// directory destRoot/jobID, resolving each name against the input folder.
// An existing staging directory for the job is refused; on any copy failure
// the partially staged directory is removed. Returns the created directory.
func Stage(ctx context.Context, p *params.Parameters, destRoot, jobID string) (string, error) {
	logger := ctxlog.FromContext(ctx).With("job", jobID)

	dir := filepath.Join(destRoot, jobID)
	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("staging directory %s already exists", dir)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat staging directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	for _, name := range InputFiles(p) {
		src := filepath.Join(p.InputFolder, name)
		dst := filepath.Join(dir, name)
		if err := copyFile(src, dst); err != nil {
			os.RemoveAll(dir)
			return "", err
		}
		logger.Debug("Staged input file.", "from", src, "to", dst)
	}
	logger.Info("Inputs staged.", "dir", dir)
	return dir, nil
}

// InputFiles lists the landscape and weather files a job depends on, in
// parameter-file order. These are the names staged for the job and the
// names the submission payload reports to the engine.
func InputFiles(p *params.Parameters) []string {
	return []string{
		p.LUTFile,
		p.ProjectionFile,
		p.ElevationFile,
		p.FuelMapFile,
		p.WeatherFile,
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create staged subdirectory: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create staged file: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
