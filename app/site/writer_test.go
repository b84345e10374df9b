package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriter_PublishesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	artifacts := []Artifact{
		{Name: "news.json", Data: []byte("[]\n")},
		{Name: "embed.html", Data: []byte("<html>embed</html>")},
		{Name: "index.html", Data: []byte("<html>index</html>")},
	}

	if err := writer.Run(artifacts); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	for _, artifact := range artifacts {
		data, err := os.ReadFile(filepath.Join(dir, artifact.Name))
		if err != nil {
			t.Fatalf("Artifact %s not published: %v", artifact.Name, err)
		}
		if string(data) != string(artifact.Data) {
			t.Errorf("Artifact %s content mismatch: %q", artifact.Name, data)
		}
	}
}

func TestWriter_NoStagingLeftovers(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	if err := writer.Run([]Artifact{{Name: "news.json", Data: []byte("[]")}}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("Staging file left behind: %s", entry.Name())
		}
	}
}

func TestWriter_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "docs")
	writer := NewWriter(dir)

	if err := writer.Run([]Artifact{{Name: "news.json", Data: []byte("[]")}}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "news.json")); err != nil {
		t.Errorf("Artifact missing in created directory: %v", err)
	}
}

func TestWriter_EarlierFailureBlocksLaterArtifacts(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	// A non-empty directory squatting on the first artifact's name makes
	// its rename fail; the artifacts queued behind it must stay
	// unpublished.
	if err := os.MkdirAll(filepath.Join(dir, "embed.html", "x"), 0o755); err != nil {
		t.Fatal(err)
	}

	artifacts := []Artifact{
		{Name: "embed.html", Data: []byte("<html>embed</html>")},
		{Name: "news.json", Data: []byte("[]")},
	}

	if err := writer.Run(artifacts); err == nil {
		t.Fatal("Expected error when an artifact cannot be published")
	}

	if _, err := os.Stat(filepath.Join(dir, "news.json")); !os.IsNotExist(err) {
		t.Error("Artifacts after a failed one must not be published")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("Staging file left behind after failure: %s", entry.Name())
		}
	}
}

func TestWriter_OverwritesPreviousRun(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	if err := writer.Run([]Artifact{{Name: "news.json", Data: []byte("old")}}); err != nil {
		t.Fatal(err)
	}
	if err := writer.Run([]Artifact{{Name: "news.json", Data: []byte("new")}}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "news.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("Expected artifact overwritten, got %q", data)
	}
}
