package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	inventoryfile "github.com/oakfield-labs/sitemapper-cli/internal/adapters/driven/inventory/file"
	inventorysqlite "github.com/oakfield-labs/sitemapper-cli/internal/adapters/driven/inventory/sqlite"
	sitefile "github.com/oakfield-labs/sitemapper-cli/internal/adapters/driven/sitestore/file"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driving"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/services"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
	"github.com/oakfield-labs/sitemapper-cli/internal/schema"
)

var (
	generateConfig    string
	generateInventory string
	generateSite      string
	generateDryRun    bool
	generateCached    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate site structures from the file inventory",
	Long: `Classifies the inventory's files into plans, lots, project
documents and photos, applies per-site configuration, and writes each
site's data.json. Input files are never modified.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "sites.config.json", "sites configuration path")
	generateCmd.Flags().StringVarP(&generateInventory, "inventory", "i", "file-mapping.json", "file inventory path")
	generateCmd.Flags().StringVarP(&generateSite, "site", "s", "", "generate a single site by slug")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "build structures without writing data.json")
	generateCmd.Flags().BoolVar(&generateCached, "cached", false, "use the latest cached inventory instead of the inventory file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSitesConfig(generateConfig)
	if err != nil {
		return err
	}

	entries, err := loadInventoryEntries()
	if err != nil {
		return err
	}

	ctx := context.Background()
	generator := services.NewGenerator(sitefile.NewStore(settings.SitesDir))

	var results []driving.GenerateResult
	if generateSite != "" {
		siteSchema, ok := findSite(cfg, generateSite)
		if !ok {
			return fmt.Errorf("site %q not in %s", generateSite, generateConfig)
		}
		result, err := generator.GenerateSite(ctx, cfg.Global, siteSchema, entries, generateDryRun)
		if err != nil {
			return err
		}
		results = []driving.GenerateResult{result}
	} else {
		results, err = generator.GenerateAll(ctx, *cfg, entries, generateDryRun)
		if err != nil {
			return err
		}
	}

	printGenerateResults(cmd, results)
	return nil
}

func loadSitesConfig(path string) (*domain.SitesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sites config: %w", err)
	}

	result, err := schema.ValidateSitesConfig(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		messages := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			messages[i] = issue.String()
		}
		return nil, fmt.Errorf("%s: %w:\n  %s", path, domain.ErrConfigInvalid, strings.Join(messages, "\n  "))
	}

	var cfg domain.SitesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse sites config: %w", err)
	}
	return &cfg, nil
}

// loadInventoryEntries reads the inventory file, falling back to the most
// recent cached audit run when the file is absent or --cached is set.
func loadInventoryEntries() ([]domain.RawFileEntry, error) {
	if !generateCached {
		entries, err := inventoryfile.NewStore(generateInventory).ReadEntries()
		if err == nil {
			return entries, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		logger.Info("Inventory file %s not found, trying cache", generateInventory)
	}

	cache, err := inventorysqlite.NewStore(dataDir())
	if err != nil {
		return nil, err
	}
	defer cache.Close()

	doc, err := cache.LatestRun()
	if err != nil {
		if errors.Is(err, domain.ErrNoInventory) {
			return nil, fmt.Errorf("no inventory available: run `sitemapper audit` first: %w", err)
		}
		return nil, err
	}

	entries := make([]domain.RawFileEntry, 0, len(doc.Files))
	for _, f := range doc.Files {
		entries = append(entries, f.RawEntry())
	}
	return entries, nil
}

func findSite(cfg *domain.SitesConfig, slug string) (domain.SiteSchema, bool) {
	for _, site := range cfg.Sites {
		if site.Slug == slug {
			return site, true
		}
	}
	return domain.SiteSchema{}, false
}

func printGenerateResults(cmd *cobra.Command, results []driving.GenerateResult) {
	rows := make([]table.Row, 0, len(results))
	for _, res := range results {
		status := "written"
		if !res.Written {
			status = "dry run"
		}
		rows = append(rows, table.Row{
			res.Slug,
			len(res.Structure.Plans),
			len(res.Structure.Lots),
			len(res.Structure.ProjectDocs),
			len(res.Structure.Photos),
			status,
		})
	}
	renderTable(os.Stdout, table.Row{"Site", "Plans", "Lots", "Docs", "Photos", "Status"}, rows)
}
