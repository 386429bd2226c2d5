package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeAudiobooksDir(t *testing.T) {
	audiobooksDir, err := GetHomeAudiobooksDir()
	if err != nil {
		t.Fatalf("Failed to get audiobooks directory: %v", err)
	}

	if audiobooksDir == "" {
		t.Fatal("Audiobooks directory is empty")
	}

	// Should end with "Audiobooks"
	if filepath.Base(audiobooksDir) != "Audiobooks" {
		t.Errorf("Expected directory to end with 'Audiobooks', got: %s", audiobooksDir)
	}
}

func TestGetDataFilePath(t *testing.T) {
	path, err := GetDataFilePath("progress.db")
	if err != nil {
		t.Fatalf("Failed to get data file path: %v", err)
	}

	if filepath.Base(path) != "progress.db" {
		t.Errorf("Expected path ending in progress.db, got: %s", path)
	}

	// Parent directory must exist after the call
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("Data directory was not created: %v", err)
	}
}

func TestRevealFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.mp3")

	err := RevealFileInManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist") {
		t.Errorf("Error message should contain 'file does not exist', got: %v", err)
	}
}
