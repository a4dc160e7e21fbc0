// Package storage keeps uploaded files on the local filesystem under a media root.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ErrInvalidPath is returned for stored paths that escape the media root.
var ErrInvalidPath = errors.New("storage: invalid path")

// sniffLen is how much of an upload is buffered for content-type detection.
const sniffLen = 3072

// Stored describes a saved file. Path is slash-separated and relative to the root.
type Stored struct {
	Path        string
	Size        int64
	ContentType string
}

// Local stores files below a root directory.
type Local struct {
	root string
}

// NewLocal creates the root directory if needed.
func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &Local{root: root}, nil
}

// Save writes r to documents/YYYY/MM/DD/<filename> for the day of now.
// When that name is taken, an 8 hex character suffix is added before the extension.
func (l *Local) Save(filename string, r io.Reader, now time.Time) (Stored, error) {
	name := cleanName(filename)
	dir := path.Join("documents", now.Format("2006/01/02"))
	if err := os.MkdirAll(filepath.Join(l.root, filepath.FromSlash(dir)), 0o755); err != nil {
		return Stored{}, fmt.Errorf("create upload dir: %w", err)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Stored{}, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	rel := path.Join(dir, name)
	f, err := l.create(rel)
	if errors.Is(err, fs.ErrExist) {
		ext := path.Ext(name)
		rel = path.Join(dir, strings.TrimSuffix(name, ext)+"_"+uuid.NewString()[:8]+ext)
		f, err = l.create(rel)
	}
	if err != nil {
		return Stored{}, fmt.Errorf("create %s: %w", rel, err)
	}

	size, copyErr := io.Copy(f, io.MultiReader(bytes.NewReader(head), r))
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(f.Name())
		return Stored{}, fmt.Errorf("write %s: %w", rel, err)
	}

	return Stored{
		Path:        rel,
		Size:        size,
		ContentType: mimetype.Detect(head).String(),
	}, nil
}

func (l *Local) create(rel string) (*os.File, error) {
	return os.OpenFile(filepath.Join(l.root, filepath.FromSlash(rel)), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

// Open opens a stored file for reading. A missing file wraps fs.ErrNotExist.
func (l *Local) Open(rel string) (io.ReadCloser, error) {
	full, err := l.resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// Remove deletes a stored file. Missing files are ignored.
func (l *Local) Remove(rel string) error {
	full, err := l.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", rel, err)
	}
	return nil
}

func (l *Local) resolve(rel string) (string, error) {
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, rel)
	}
	return filepath.Join(l.root, local), nil
}

// cleanName keeps only the base name of a client-supplied filename.
func cleanName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "upload"
	}
	return name
}
