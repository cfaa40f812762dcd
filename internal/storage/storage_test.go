package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	payload := []byte("Team,Mean Age\nMIL,22.0\n")
	if err := store.WriteFile("team_ages.csv", payload); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(store.Path("team_ages.csv"))
	if err != nil {
		t.Fatalf("Failed to read artifact back: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("expected %q, got %q", payload, got)
	}
}

func TestWriteJSON(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	summary := map[string]interface{}{
		"season": 2017,
		"teams":  []string{"MIL", "OKC"},
	}
	if err := store.WriteJSON("summary.json", summary); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	data, err := os.ReadFile(store.Path("summary.json"))
	if err != nil {
		t.Fatalf("Failed to read artifact back: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if decoded["season"].(float64) != 2017 {
		t.Errorf("expected season 2017, got %v", decoded["season"])
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	nested := filepath.Join(tmpDir, "out", "2017")
	store, err := New(nested)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	info, err := os.Stat(store.Dir())
	if err != nil {
		t.Fatalf("output directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected output path to be a directory")
	}
}

func TestPathJoinsOutputDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	want := filepath.Join(tmpDir, "age_chart.png")
	if got := store.Path("age_chart.png"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
