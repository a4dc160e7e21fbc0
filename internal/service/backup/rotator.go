// Package backup archives uploaded document files and rotates old archives.
package backup

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gosimple/slug"

	"github.com/heartmarshall/adminos-backend/internal/config"
	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/storage"
)

const (
	archivePrefix = "documents_"
	archiveGlob   = archivePrefix + "*.zip"
)

type versionLister interface {
	ListVersionsForBackup(ctx context.Context) ([]domain.DocumentVersion, error)
}

type fileOpener interface {
	Open(rel string) (io.ReadCloser, error)
}

// Result summarizes one backup run.
type Result struct {
	Path     string
	Archived int
	Skipped  int
	Removed  []string
}

// Rotator writes a timestamped zip of every stored document version and
// keeps only the newest archives.
type Rotator struct {
	versions  versionLister
	files     fileOpener
	dir       string
	retention int
	now       func() time.Time
	log       *slog.Logger
}

// NewRotator creates a Rotator writing into cfg.BackupRoot.
func NewRotator(log *slog.Logger, versions versionLister, files fileOpener, cfg config.StorageConfig) *Rotator {
	return &Rotator{
		versions:  versions,
		files:     files,
		dir:       cfg.BackupRoot,
		retention: cfg.BackupRetention,
		now:       time.Now,
		log:       log.With("job", "backup"),
	}
}

// Run writes documents_<YYYYMMDD_HHMMSS>.zip and then deletes all but the
// newest archives by name. Versions whose file is missing are skipped.
func (r *Rotator) Run(ctx context.Context) (Result, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create backup dir: %w", err)
	}

	versions, err := r.versions.ListVersionsForBackup(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list versions: %w", err)
	}

	res := Result{Path: filepath.Join(r.dir, archivePrefix+r.now().Format("20060102_150405")+".zip")}
	if err := r.writeArchive(ctx, res.Path, versions, &res); err != nil {
		return Result{}, err
	}

	removed, err := r.rotate()
	if err != nil {
		return res, err
	}
	res.Removed = removed

	r.log.InfoContext(ctx, "backup created",
		slog.String("path", res.Path),
		slog.Int("archived", res.Archived),
		slog.Int("skipped", res.Skipped),
		slog.Int("removed", len(res.Removed)),
	)
	return res, nil
}

// writeArchive builds the zip in a temporary file and renames it into place.
func (r *Rotator) writeArchive(ctx context.Context, path string, versions []domain.DocumentVersion, res *Result) (err error) {
	tmp, err := os.CreateTemp(r.dir, ".backup-*.tmp")
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	zw := zip.NewWriter(tmp)
	for _, v := range versions {
		if err := ctx.Err(); err != nil {
			return err
		}
		added, err := r.addVersion(ctx, zw, v)
		if err != nil {
			return err
		}
		if added {
			res.Archived++
		} else {
			res.Skipped++
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename archive: %w", err)
	}
	return nil
}

func (r *Rotator) addVersion(ctx context.Context, zw *zip.Writer, v domain.DocumentVersion) (bool, error) {
	src, err := r.files.Open(v.FilePath)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, storage.ErrInvalidPath) {
		r.log.WarnContext(ctx, "skipping missing file",
			slog.String("version_id", v.ID.String()),
			slog.String("path", v.FilePath),
		)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("open %s: %w", v.FilePath, err)
	}
	defer src.Close()

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     EntryName(v),
		Method:   zip.Deflate,
		Modified: v.CreatedAt,
	})
	if err != nil {
		return false, fmt.Errorf("add %s: %w", v.FilePath, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return false, fmt.Errorf("copy %s: %w", v.FilePath, err)
	}
	return true, nil
}

// EntryName is <register-slug>/<document-slug>/v<version>_<filename>.
// Names that slugify to nothing fall back to register-<id> and document-<id>.
func EntryName(v domain.DocumentVersion) string {
	registerSlug := slug.Make(v.RegisterName)
	if registerSlug == "" {
		registerSlug = "register-" + v.RegisterID.String()
	}
	documentSlug := slug.Make(v.DocumentTitle)
	if documentSlug == "" {
		documentSlug = "document-" + v.DocumentID.String()
	}
	return fmt.Sprintf("%s/%s/v%d_%s", registerSlug, documentSlug, v.Version, v.Filename())
}

// rotate deletes all but the newest r.retention archives, ordered by name.
func (r *Rotator) rotate() ([]string, error) {
	archives, err := filepath.Glob(filepath.Join(r.dir, archiveGlob))
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	slices.Sort(archives)
	if len(archives) <= r.retention {
		return nil, nil
	}

	stale := archives[:len(archives)-r.retention]
	for _, p := range stale {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("remove %s: %w", p, err)
		}
	}
	return stale, nil
}
