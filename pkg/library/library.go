// Package library places completed transfers into the organized media tree.
// Placement is deterministic: the same inputs always produce the same
// destination path, so re-running a placement can only collide, never
// scatter files.
package library

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	mio "github.com/aldesouky/seedarr/pkg/io"
	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/storage"
)

var (
	// ErrDestinationExists means the destination file is already present.
	// Placement never overwrites.
	ErrDestinationExists = errors.New("destination file already exists")
	// ErrVerificationFailed means the copied file's size did not match the
	// source.
	ErrVerificationFailed = errors.New("copied file size does not match source")
	// ErrNoRoot means no media root is configured for the content class.
	ErrNoRoot = errors.New("no media root configured for content class")
)

// Roots are the media tree roots by content class.
type Roots struct {
	SeriesEnglish string
	SeriesArabic  string
	MovieEnglish  string
	MovieArabic   string
}

// Root picks the media root for a content class.
func (r Roots) Root(kind storage.MediaKind, language storage.Language) (string, error) {
	var root string
	switch {
	case kind == storage.MediaKindSeries && language == storage.LanguageEnglish:
		root = r.SeriesEnglish
	case kind == storage.MediaKindSeries && language == storage.LanguageArabic:
		root = r.SeriesArabic
	case kind == storage.MediaKindMovie && language == storage.LanguageEnglish:
		root = r.MovieEnglish
	case kind == storage.MediaKindMovie && language == storage.LanguageArabic:
		root = r.MovieArabic
	}

	if root == "" {
		return "", fmt.Errorf("%w: %s/%s", ErrNoRoot, kind, language)
	}
	return root, nil
}

// Library organizes completed transfers under the configured roots.
type Library struct {
	fileIO mio.FileIO
	roots  Roots
}

func New(fileIO mio.FileIO, roots Roots) *Library {
	return &Library{fileIO: fileIO, roots: roots}
}

// PlaceEpisode moves a completed episode file into the series tree and
// returns the destination path.
func (l *Library) PlaceEpisode(ctx context.Context, sourcePath string, language storage.Language, seriesTitle string, season, episode int) (string, error) {
	root, err := l.roots.Root(storage.MediaKindSeries, language)
	if err != nil {
		return "", err
	}

	dest := EpisodePath(root, seriesTitle, season, episode, filepath.Ext(sourcePath))
	if err := l.place(ctx, sourcePath, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// PlaceMovie moves a completed movie file into the movie tree and returns
// the destination path.
func (l *Library) PlaceMovie(ctx context.Context, sourcePath string, language storage.Language, title string, year *int32) (string, error) {
	root, err := l.roots.Root(storage.MediaKindMovie, language)
	if err != nil {
		return "", err
	}

	dest := MoviePath(root, title, year, filepath.Ext(sourcePath))
	if err := l.place(ctx, sourcePath, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// EpisodePath builds a series destination path.
func EpisodePath(root, seriesTitle string, season, episode int, ext string) string {
	title := SanitizeTitle(seriesTitle)
	return filepath.Join(root, title,
		fmt.Sprintf("Season %02d", season),
		fmt.Sprintf("%s - S%02dE%02d%s", title, season, episode, ext))
}

// MoviePath builds a movie destination path. The year is omitted when
// unknown.
func MoviePath(root, title string, year *int32, ext string) string {
	name := SanitizeTitle(title)
	if year != nil {
		name = fmt.Sprintf("%s (%d)", name, *year)
	}
	return filepath.Join(root, name+ext)
}

// place moves source to dest. Renames when both live on the same
// filesystem, otherwise copies, verifies the size, and deletes the source.
// On any failure the source is left untouched.
func (l *Library) place(ctx context.Context, source, dest string) error {
	log := logger.FromCtx(ctx)

	if l.fileIO.FileExists(dest) {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	}

	destDir := filepath.Dir(dest)
	if err := l.fileIO.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	same, err := l.fileIO.IsSameFileSystem(source, destDir)
	if err != nil {
		return fmt.Errorf("failed to compare filesystems: %w", err)
	}

	if same {
		log.Debugw("renaming into library", "source", source, "dest", dest)
		if err := l.fileIO.Rename(source, dest); err != nil {
			if errors.Is(err, mio.ErrFileExists) {
				return fmt.Errorf("%w: %s", ErrDestinationExists, dest)
			}
			return fmt.Errorf("failed to rename into library: %w", err)
		}
		return nil
	}

	log.Debugw("copying into library", "source", source, "dest", dest)
	written, err := l.fileIO.Copy(source, dest)
	if err != nil {
		if errors.Is(err, mio.ErrFileExists) {
			return fmt.Errorf("%w: %s", ErrDestinationExists, dest)
		}
		return fmt.Errorf("failed to copy into library: %w", err)
	}

	info, err := l.fileIO.Stat(source)
	if err != nil {
		return fmt.Errorf("failed to stat source after copy: %w", err)
	}
	if info.Size() != written {
		// leave the source in place so the copy can be redone
		_ = l.fileIO.Remove(dest)
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrVerificationFailed, written, info.Size())
	}

	if err := l.fileIO.Remove(source); err != nil {
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}

	return nil
}

var (
	invalidPathChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	repeatedSpace    = regexp.MustCompile(`\s+`)
)

// SanitizeTitle makes a title safe to use as a path component. Latin
// combining accents are stripped, characters the common filesystems reject
// are removed, and whitespace is collapsed. Arabic titles keep their marks:
// hamza-carrying letters decompose to combining marks under NFD and would
// be destroyed by stripping.
func SanitizeTitle(title string) string {
	if !containsArabic(title) {
		chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normalized, _, err := transform.String(chain, title); err == nil {
			title = normalized
		}
	}

	title = invalidPathChars.ReplaceAllString(title, "")
	title = repeatedSpace.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	title = strings.TrimRight(title, ".")
	return title
}

func containsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
