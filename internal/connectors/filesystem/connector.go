package filesystem

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driven"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

// DocumentPatterns matches the document types slot building cares about.
var DocumentPatterns = []string{"**/*.pdf", "**/*.doc", "**/*.docx"}

// ImagePatterns matches photo files for sites that publish image sections.
var ImagePatterns = []string{"**/*.png", "**/*.jpg", "**/*.jpeg", "**/*.webp"}

var mimeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// Connector lists files under a local directory, typically a checked-out
// public folder. File IDs are relative slash paths, which keeps listings
// stable across machines.
type Connector struct {
	root     string
	patterns []string
}

var _ driven.FileSource = (*Connector)(nil)

func New(root string, patterns []string) *Connector {
	if len(patterns) == 0 {
		patterns = DocumentPatterns
	}
	return &Connector{root: root, patterns: patterns}
}

func (c *Connector) Type() string {
	return "filesystem"
}

func (c *Connector) List(ctx context.Context) ([]domain.FileRecord, error) {
	rootName := filepath.Base(filepath.Clean(c.root))
	var records []domain.FileRecord

	err := filepath.WalkDir(c.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !c.matches(rel) {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		checksum, err := checksumFile(path)
		if err != nil {
			logger.Warn("filesystem: checksum %s: %v", rel, err)
		}

		parent := rootName
		if dir := filepath.ToSlash(filepath.Dir(rel)); dir != "." {
			parent = rootName + "/" + dir
		}

		records = append(records, domain.FileRecord{
			ID:         rel,
			Name:       entry.Name(),
			MIMEType:   mimeForName(entry.Name()),
			SizeBytes:  info.Size(),
			Checksum:   checksum,
			ParentPath: parent,
			Modified:   info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", c.root, err)
	}

	logger.Debug("filesystem: listed %d files under %s", len(records), c.root)
	return records, nil
}

func (c *Connector) matches(rel string) bool {
	lower := strings.ToLower(rel)
	for _, pattern := range c.patterns {
		if ok, err := doublestar.Match(pattern, lower); err == nil && ok {
			return true
		}
	}
	return false
}

func mimeForName(name string) string {
	if mime, ok := mimeByExtension[strings.ToLower(filepath.Ext(name))]; ok {
		return mime
	}
	return "application/octet-stream"
}

func checksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
