package assets

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// allowedMimeTypes maps accepted content types to file extensions. Images
// cover the exhibit's jpeg/png inputs; audio and video serve artwork
// media.
var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"audio/mpeg": ".mp3",
	"audio/wave": ".wav",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
}

// DiskStore keeps assets on the local filesystem and serves them under a
// static URL prefix. handle == <folder>/<key><ext>, which makes the URL
// scheme trivially invertible.
type DiskStore struct {
	baseDir string
	baseURL string
}

func NewDiskStore(baseDir, baseURL string) *DiskStore {
	return &DiskStore{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (d *DiskStore) Upload(ctx context.Context, content []byte, folder, key string) (*Object, error) {
	if len(content) == 0 {
		return nil, ErrEmptyContent
	}

	// Sniff the real content type; client-provided names are not trusted.
	mimeType := http.DetectContentType(content)
	mimeType = strings.Split(mimeType, ";")[0]
	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, ErrUnsupportedType
	}

	handle := folder + "/" + key + ext
	absPath := filepath.Join(d.baseDir, filepath.FromSlash(handle))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(absPath, content, 0o644); err != nil {
		return nil, err
	}

	return &Object{
		URL:    d.baseURL + "/" + handle,
		Handle: handle,
	}, nil
}

func (d *DiskStore) Delete(ctx context.Context, handle string) error {
	err := os.Remove(filepath.Join(d.baseDir, filepath.FromSlash(handle)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *DiskStore) HandleFromURL(url string) (string, bool) {
	return strings.CutPrefix(url, d.baseURL+"/")
}
