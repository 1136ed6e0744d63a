package drive

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/oakfield-labs/sitemapper-cli/internal/connectors/google"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driven"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

const listFields = "nextPageToken, files(id, name, mimeType, size, md5Checksum, modifiedTime)"

// Connector walks a Drive folder tree and lists the document and image
// files it contains. Paths are slash-joined folder names rooted at the
// configured folder's own name.
type Connector struct {
	service *drive.Service
	config  *Config
	limiter *google.RateLimiter
}

var _ driven.FileSource = (*Connector)(nil)

func New(service *drive.Service, config *Config) *Connector {
	return &Connector{
		service: service,
		config:  config,
		limiter: google.NewRateLimiter(),
	}
}

func (c *Connector) Type() string {
	return "gdrive"
}

// List walks the folder tree breadth-first and returns every kept file.
func (c *Connector) List(ctx context.Context) ([]domain.FileRecord, error) {
	rootName, err := c.folderName(ctx, c.config.FolderID)
	if err != nil {
		return nil, err
	}

	type pendingFolder struct {
		id   string
		path string
	}

	queue := []pendingFolder{{id: c.config.FolderID, path: rootName}}
	var records []domain.FileRecord

	for len(queue) > 0 {
		folder := queue[0]
		queue = queue[1:]

		pageToken := ""
		for {
			page, err := c.listPage(ctx, folder.id, pageToken)
			if err != nil {
				return nil, fmt.Errorf("list folder %q: %w", folder.path, err)
			}

			for _, f := range page.Files {
				if f.MimeType == folderMimeType {
					queue = append(queue, pendingFolder{id: f.Id, path: folder.path + "/" + f.Name})
					continue
				}
				if !c.config.keeps(f.MimeType) {
					continue
				}
				records = append(records, domain.FileRecord{
					ID:         f.Id,
					Name:       f.Name,
					MIMEType:   f.MimeType,
					SizeBytes:  f.Size,
					Checksum:   f.Md5Checksum,
					ParentPath: folder.path,
					Modified:   parseModified(f.ModifiedTime),
				})
			}

			pageToken = page.NextPageToken
			if pageToken == "" {
				break
			}
		}
	}

	logger.Debug("drive: listed %d files under %q", len(records), rootName)
	return records, nil
}

func (c *Connector) listPage(ctx context.Context, folderID, pageToken string) (*drive.FileList, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	call := c.service.Files.List().
		Q(fmt.Sprintf("'%s' in parents and trashed=false", folderID)).
		Fields(googleapi.Field(listFields)).
		PageSize(c.config.PageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	page, err := call.Do()
	if err != nil {
		if isRateLimited(err) {
			c.limiter.Backoff(5 * time.Second)
		}
		return nil, err
	}
	return page, nil
}

func (c *Connector) folderName(ctx context.Context, folderID string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	folder, err := c.service.Files.Get(folderID).Fields("name").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("resolve folder %s: %w", folderID, err)
	}
	return folder.Name, nil
}

func isRateLimited(err error) bool {
	apiErr, ok := err.(*googleapi.Error)
	if !ok {
		return false
	}
	return apiErr.Code == 429 || apiErr.Code == 403
}

func parseModified(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
