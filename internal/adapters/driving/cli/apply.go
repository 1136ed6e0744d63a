package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	inventoryfile "github.com/oakfield-labs/sitemapper-cli/internal/adapters/driven/inventory/file"
	sitefile "github.com/oakfield-labs/sitemapper-cli/internal/adapters/driven/sitestore/file"
	"github.com/oakfield-labs/sitemapper-cli/internal/connectors/google/drive"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driving"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/services"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

var (
	applySiteSlug string
	applyURLs     string
	applyDryRun   bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Fill real file IDs into an existing site structure",
	Long: `Fuzzy-matches slot titles in a site's data.json against a pool of
files and fills in their IDs. The pool comes from a urls.json file when
--urls is given, otherwise from a live listing of the public folder.`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applySiteSlug, "site", "s", "", "site slug (default from config)")
	applyCmd.Flags().StringVar(&applyURLs, "urls", "", "urls.json with filename to ID or share URL rows")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "report matches without writing data.json")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, _ []string) error {
	slug := applySiteSlug
	if slug == "" {
		slug = settings.DefaultSite
	}
	if slug == "" {
		return errors.New("no site specified: pass --site or set default_site in the config")
	}

	store := sitefile.NewStore(settings.SitesDir)
	site, err := store.Load(slug)
	if errors.Is(err, domain.ErrSiteDataNotFound) {
		if err := store.Seed(slug); err != nil {
			return err
		}
		site, err = store.Load(slug)
	}
	if err != nil {
		return err
	}

	pool, err := buildPool(cmd)
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		return errors.New("empty file pool: nothing to match against")
	}

	patcher := services.NewPatcher()
	result := patcher.Apply(site, pool)
	printMatches(cmd, result.Matched)
	cmd.Println(patcher.Summary(result))

	remaining := services.CountPlaceholders(site, "PASTE_FILE_ID_HERE") +
		services.CountPlaceholders(site, "FILE_ID_OR_URL")
	if remaining > 0 {
		logger.Warn("%d placeholder file references remain", remaining)
	}

	if applyDryRun {
		cmd.Println("Dry run, data.json not written.")
		return nil
	}
	if result.Updated == 0 {
		cmd.Println("No changes.")
		return nil
	}
	return store.Save(slug, site)
}

func buildPool(cmd *cobra.Command) ([]domain.FileRecord, error) {
	if applyURLs != "" {
		rows, err := inventoryfile.LoadURLRows(applyURLs)
		if err != nil {
			return nil, err
		}
		pool, missingID := services.PoolFromURLRows(rows, drive.ExtractFileID)
		if missingID > 0 {
			logger.Warn("%d rows in %s have no usable file ID", missingID, applyURLs)
		}
		return pool, nil
	}

	ctx := context.Background()
	source, err := newFileSource(ctx, "")
	if err != nil {
		return nil, err
	}

	cmd.Printf("Listing files (%s)...\n", source.Type())
	records, err := source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return services.DedupeByName(records), nil
}

func printMatches(cmd *cobra.Command, matches []driving.PatchMatch) {
	if len(matches) == 0 {
		cmd.Println("No slots matched.")
		return
	}

	rows := make([]table.Row, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, table.Row{m.SlotTitle, m.FileName, drive.ViewURL(m.FileID)})
	}
	renderTable(os.Stdout, table.Row{"Slot", "File", "Link"}, rows)
}
