// internals/helpers/storage/storage.go
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"checkinku_backend/internals/configs"
)

var ErrNotFound = errors.New("storage: file not found")

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeFilename buang karakter selain huruf, angka, titik, dash, underscore.
func SanitizeFilename(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// SaveFile menyimpan konten ke backend storage dan mengembalikan URL
// yang bisa diakses klien. Backend local menulis ke
// {STORAGE_ROOT}/{directory}/{fileName} dan mengembalikan path relatif
// /files/{directory}/{fileName}; backend external meng-upload via HTTP
// PUT ke object storage dan mengembalikan public URL-nya.
func SaveFile(directory, fileName string, content []byte) (string, error) {
	fileName = SanitizeFilename(fileName)

	if configs.StorageType == "external" {
		return uploadExternal(directory, fileName, content)
	}
	return saveLocal(directory, fileName, content)
}

func saveLocal(directory, fileName string, content []byte) (string, error) {
	dir := filepath.Join(configs.StorageRoot, directory)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), content, 0o644); err != nil {
		return "", fmt.Errorf("write %s/%s: %w", directory, fileName, err)
	}
	return "/files/" + directory + "/" + fileName, nil
}

// ReadFile membaca file berdasarkan path relatif di bawah /files/.
// Path traversal ditolak sebagai ErrNotFound.
func ReadFile(relPath string) ([]byte, error) {
	relPath = strings.TrimLeft(relPath, "/")
	full := filepath.Join(configs.StorageRoot, filepath.Clean("/"+relPath))

	root, err := filepath.Abs(configs.StorageRoot)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(full)
	if err != nil {
		return nil, err
	}
	if abs != root && !strings.HasPrefix(abs, root+string(os.PathSeparator)) {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// DeleteFile hapus asset berdasarkan URL relatif /files/... (best effort).
func DeleteFile(fileURL string) error {
	rel := strings.TrimPrefix(fileURL, "/files/")
	if rel == fileURL || rel == "" {
		return nil // bukan asset lokal kita
	}
	full := filepath.Join(configs.StorageRoot, filepath.Clean("/"+rel))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

/* =======================================================================
   External object storage (HTTP PUT, bearer key)
======================================================================= */

func uploadExternal(directory, fileName string, content []byte) (string, error) {
	baseURL := strings.TrimSpace(os.Getenv("STORAGE_PROJECT_URL"))
	key := strings.TrimSpace(os.Getenv("STORAGE_SERVICE_KEY"))
	bucket := strings.TrimSpace(configs.GetEnv("STORAGE_BUCKET", "assets"))

	if baseURL == "" || key == "" {
		return "", fmt.Errorf("STORAGE_PROJECT_URL or STORAGE_SERVICE_KEY not set")
	}

	objectPath := directory + "/" + fileName
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", baseURL, bucket, objectPath)

	req, err := http.NewRequest(http.MethodPut, uploadURL, bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", contentTypeByExt(fileName))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed status %d: %s", resp.StatusCode, string(body))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		baseURL, bucket, url.PathEscape(objectPath)), nil
}

func contentTypeByExt(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// ContentTypeByExt dipakai juga oleh file controller.
func ContentTypeByExt(fileName string) string { return contentTypeByExt(fileName) }
