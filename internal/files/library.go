package files

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// imageExtensions is the picker allowlist. Listing with includeAll=true is
// the escape hatch for showing any file.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Library is the on-disk collection of displayable files the picker chooses
// from. All paths handed out are relative to the root; Resolve is the only
// way back to an absolute path, so nothing outside the root is reachable.
type Library struct {
	root string
}

func NewLibrary(root string) *Library {
	return &Library{root: root}
}

// List returns the relative paths of files under the root, filtered by the
// image-extension allowlist unless includeAll is set. A missing root is an
// empty library, not an error.
func (l *Library) List(includeAll bool) ([]string, error) {
	var out []string
	err := filepath.WalkDir(l.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !includeAll && !imageExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		out = append(out, rel)
		return nil
	})
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("files: list %s: %w", l.root, err)
	}
	sort.Strings(out)
	return out, nil
}

// Resolve validates that name refers to an existing file inside the root and
// returns its absolute path.
func (l *Library) Resolve(name string) (string, error) {
	full := filepath.Join(l.root, filepath.Clean("/"+name))
	if _, err := os.Stat(full); err != nil {
		return "", fmt.Errorf("files: resolve %s: %w", name, err)
	}
	return full, nil
}

// SaveFile stores an uploaded file under the root with a normalized, unique
// filename and returns the relative path. Uploads outside the extension
// allowlist are rejected.
func (l *Library) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("files: unsupported file type %q", ext)
	}

	if err := os.MkdirAll(l.root, 0o755); err != nil {
		return "", fmt.Errorf("files: create %s: %w", l.root, err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("files: open upload: %w", err)
	}
	defer src.Close()

	name := normalizeFilename(fileHeader.Filename)
	dst, err := os.Create(filepath.Join(l.root, name))
	if err != nil {
		return "", fmt.Errorf("files: create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("files: write %s: %w", name, err)
	}

	log.Info().Str("file", name).Msg("stored library file")
	return name, nil
}

// normalizeFilename creates a unique, normalized filename without spaces
func normalizeFilename(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	baseName := strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename))

	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = unsafeChars.ReplaceAllString(baseName, "")
	if baseName == "" {
		baseName = "file"
	}

	// Timestamp keeps repeated uploads of the same name from colliding.
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s%s", baseName, timestamp, ext)
}
