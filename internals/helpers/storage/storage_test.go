package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"checkinku_backend/internals/configs"
)

func setupLocal(t *testing.T) {
	t.Helper()
	configs.StorageType = "local"
	configs.StorageRoot = t.TempDir()
}

func TestSaveAndReadFile(t *testing.T) {
	setupLocal(t)

	url, err := SaveFile("qrcodes", "test.png", []byte("isi"))
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if url != "/files/qrcodes/test.png" {
		t.Errorf("url = %q", url)
	}

	data, err := ReadFile("qrcodes/test.png")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(data, []byte("isi")) {
		t.Errorf("content = %q", data)
	}
}

func TestReadFileMissing(t *testing.T) {
	setupLocal(t)

	if _, err := ReadFile("qrcodes/tidak-ada.png"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReadFileTraversalGuard(t *testing.T) {
	setupLocal(t)

	// tanam file di luar storage root
	outside := filepath.Join(filepath.Dir(configs.StorageRoot), "rahasia.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatalf("plant file: %v", err)
	}
	defer os.Remove(outside)

	for _, p := range []string{
		"../rahasia.txt",
		"qrcodes/../../rahasia.txt",
		"..%2Frahasia.txt",
	} {
		if _, err := ReadFile(p); err != ErrNotFound {
			t.Errorf("ReadFile(%q): err = %v, want ErrNotFound", p, err)
		}
	}
}

func TestDeleteFile(t *testing.T) {
	setupLocal(t)

	url, err := SaveFile("qrcodes", "hapus.png", []byte("x"))
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	if err := DeleteFile(url); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := ReadFile("qrcodes/hapus.png"); err != ErrNotFound {
		t.Error("file still readable after delete")
	}

	// hapus ulang & URL asing: no-op tanpa error
	if err := DeleteFile(url); err != nil {
		t.Errorf("second delete: %v", err)
	}
	if err := DeleteFile("https://cdn.example.com/foo.png"); err != nil {
		t.Errorf("foreign url delete: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"event_qr_abc.png":    "event_qr_abc.png",
		"../../etc/passwd":    ".._.._etc_passwd",
		"nama file (1).png":   "nama_file_1_.png",
		"qr\x00null.png":      "qr_null.png",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContentTypeByExt(t *testing.T) {
	cases := map[string]string{
		"a.png":  "image/png",
		"a.webp": "image/webp",
		"a.jpg":  "image/jpeg",
		"a.bin":  "application/octet-stream",
	}
	for in, want := range cases {
		if got := ContentTypeByExt(in); got != want {
			t.Errorf("ContentTypeByExt(%q) = %q, want %q", in, got, want)
		}
	}
}
