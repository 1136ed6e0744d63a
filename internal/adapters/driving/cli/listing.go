package cli

import (
	"context"
	"errors"

	"github.com/oakfield-labs/sitemapper-cli/internal/connectors/filesystem"
	"github.com/oakfield-labs/sitemapper-cli/internal/connectors/google"
	"github.com/oakfield-labs/sitemapper-cli/internal/connectors/google/drive"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driven"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

var errNoSource = errors.New("no file source configured: set public_folder_id (with Drive credentials) or public_folder_path")

// newFileSource builds the listing source the settings describe. A local
// path wins when both are configured and localPath is forced by a flag.
func newFileSource(ctx context.Context, localPath string) (driven.FileSource, error) {
	if localPath == "" {
		localPath = settings.PublicFolderPath
	}

	if settings.PublicFolderID != "" {
		source, err := newDriveSource(ctx, settings.PublicFolderID)
		if err == nil {
			return source, nil
		}
		if localPath == "" {
			return nil, err
		}
		logger.Warn("Drive unavailable (%v), falling back to %s", err, localPath)
	}

	if localPath == "" {
		return nil, errNoSource
	}

	patterns := filesystem.DocumentPatterns
	if settings.IncludeImages {
		patterns = append(append([]string{}, patterns...), filesystem.ImagePatterns...)
	}
	return filesystem.New(localPath, patterns), nil
}

func newDriveSource(ctx context.Context, folderID string) (driven.FileSource, error) {
	ts, err := google.TokenSourceFromFiles(ctx, settings.CredentialsPath, settings.TokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := google.NewDriveService(ctx, ts)
	if err != nil {
		return nil, err
	}

	cfg := drive.NewConfig(folderID)
	cfg.IncludeImages = settings.IncludeImages
	return drive.New(svc, cfg), nil
}
