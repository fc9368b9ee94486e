package store

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.etcd.io/bbolt"
)

func TestJSONFile_LoadMissing(t *testing.T) {
	st := NewJSON(filepath.Join(t.TempDir(), "no-such-file.json"))

	books, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if len(books) != 0 {
		t.Errorf("Load() returned %d books, want 0", len(books))
	}
}

func TestJSONFile_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "truncated json", content: `[{"Title": "Dune",`},
		{name: "plain text", content: "this is not a library"},
		{name: "wrong shape", content: `{"Title": "Dune"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "library.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			books, err := NewJSON(path).Load()
			if err != nil {
				t.Fatalf("Load() error = %v, want nil", err)
			}

			if len(books) != 0 {
				t.Errorf("Load() returned %d books, want 0", len(books))
			}
		})
	}
}

func TestJSONFile_SaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")

	if err := NewJSON(path).Save(sampleBooks()); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read library file: %v", err)
	}

	// The on-disk format stays readable and keeps the capitalized keys
	// older library files were written with.
	for _, want := range []string{"    \"Title\": \"Dune\"", "\"Author\": \"Frank Herbert\"", "\"Read\": true"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("library file missing %q:\n%s", want, data)
		}
	}
}

func TestJSONFile_SaveNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")

	if err := NewJSON(path).Save(nil); err != nil {
		t.Fatalf("Save(nil) error = %v, want nil", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read library file: %v", err)
	}

	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("Save(nil) wrote %q, want empty array", data)
	}
}

func TestJSONFile_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "library.json")

	if err := NewJSON(path).Save(sampleBooks()); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("library file was not created: %v", err)
	}
}

func TestBolt_LoadSkipsDamagedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.bolt")

	st, err := NewBolt(path)
	if err != nil {
		t.Fatalf("failed to open bolt store: %v", err)
	}

	if err := st.Save(sampleBooks()); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}

	if err := st.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	// Plant a record that is not valid JSON.
	raw, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}

	err = raw.Update(func(tx *bbolt.Tx) error {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, 99)

		return tx.Bucket([]byte(boltBucketBooks)).Put(key, []byte("not json"))
	})
	if err != nil {
		t.Fatalf("failed to plant damaged record: %v", err)
	}

	if err := raw.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	st, err = NewBolt(path)
	if err != nil {
		t.Fatalf("failed to reopen bolt store: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if len(got) != len(sampleBooks()) {
		t.Errorf("Load() returned %d books, want %d", len(got), len(sampleBooks()))
	}
}
