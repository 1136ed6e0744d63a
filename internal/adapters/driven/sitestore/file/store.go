// Package file stores per-site structures as sites/<slug>/data.json. Every
// save takes a file lock and backs up the previous data.json first, so a
// bad generation run is always recoverable.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driven"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

const (
	dataFileName  = "data.json"
	lockFileName  = ".data.lock"
	templateSlug  = "_template"
	lockRetryWait = 50 * time.Millisecond
	lockTimeout   = 5 * time.Second
)

type Store struct {
	sitesDir string
}

var _ driven.SiteStore = (*Store)(nil)

func NewStore(sitesDir string) *Store {
	return &Store{sitesDir: sitesDir}
}

func (s *Store) dataPath(slug string) string {
	return filepath.Join(s.sitesDir, slug, dataFileName)
}

// Load reads a site's structure. A missing data.json is reported as
// domain.ErrSiteDataNotFound so callers can offer to seed the site.
func (s *Store) Load(slug string) (*domain.SiteStructure, error) {
	data, err := os.ReadFile(s.dataPath(slug))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("site %q: %w", slug, domain.ErrSiteDataNotFound)
		}
		return nil, fmt.Errorf("read site data: %w", err)
	}

	var site domain.SiteStructure
	if err := json.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse site data: %w", err)
	}
	return &site, nil
}

// Save writes a site's structure under a file lock, backing up any
// existing data.json as data.bak.<unix>.json first.
func (s *Store) Save(slug string, site *domain.SiteStructure) error {
	siteDir := filepath.Join(s.sitesDir, slug)
	if err := os.MkdirAll(siteDir, 0o755); err != nil {
		return fmt.Errorf("create site directory: %w", err)
	}

	lockCtx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	lock := flock.New(filepath.Join(siteDir, lockFileName))
	locked, err := lock.TryLockContext(lockCtx, lockRetryWait)
	if err != nil || !locked {
		return fmt.Errorf("lock site data for %q: locked by another process", slug)
	}
	defer lock.Unlock()

	path := s.dataPath(slug)
	if err := s.backup(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(site, "", "  ")
	if err != nil {
		return fmt.Errorf("encode site data: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write site data: %w", err)
	}
	return nil
}

func (s *Store) backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read existing site data: %w", err)
	}

	backupPath := filepath.Join(filepath.Dir(path), fmt.Sprintf("data.bak.%d.json", time.Now().Unix()))
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return fmt.Errorf("back up site data: %w", err)
	}

	logger.Debug("sitestore: backed up %s to %s", path, backupPath)
	return nil
}

// Seed copies the _template site's data.json into a site that has none.
// It is a no-op when the site already has data.
func (s *Store) Seed(slug string) error {
	if _, err := os.Stat(s.dataPath(slug)); err == nil {
		return nil
	}

	template, err := os.ReadFile(s.dataPath(templateSlug))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("seed site %q: no %s site: %w", slug, templateSlug, domain.ErrSiteDataNotFound)
		}
		return fmt.Errorf("read template site data: %w", err)
	}

	siteDir := filepath.Join(s.sitesDir, slug)
	if err := os.MkdirAll(siteDir, 0o755); err != nil {
		return fmt.Errorf("create site directory: %w", err)
	}

	if err := os.WriteFile(s.dataPath(slug), template, 0o644); err != nil {
		return fmt.Errorf("seed site data: %w", err)
	}

	logger.Info("Seeded site %q from template", slug)
	return nil
}
