package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	inventoryfile "github.com/oakfield-labs/sitemapper-cli/internal/adapters/driven/inventory/file"
	inventorysqlite "github.com/oakfield-labs/sitemapper-cli/internal/adapters/driven/inventory/sqlite"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

var (
	inventoryJSONOut string
	inventoryCSVOut  string
	inventoryLimit   int
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Show the latest cached file inventory",
	RunE:  runInventory,
}

func init() {
	inventoryCmd.Flags().StringVar(&inventoryJSONOut, "json", "", "export the inventory as JSON")
	inventoryCmd.Flags().StringVar(&inventoryCSVOut, "csv", "", "export the inventory as CSV")
	inventoryCmd.Flags().IntVarP(&inventoryLimit, "limit", "n", 25, "rows to display (0 for all)")
	rootCmd.AddCommand(inventoryCmd)
}

func runInventory(cmd *cobra.Command, _ []string) error {
	cache, err := inventorysqlite.NewStore(dataDir())
	if err != nil {
		return err
	}
	defer cache.Close()

	doc, err := cache.LatestRun()
	if err != nil {
		if errors.Is(err, domain.ErrNoInventory) {
			return errors.New("no cached inventory: run `sitemapper audit` first")
		}
		return err
	}

	cmd.Printf("Run %s, generated %s, %d files\n\n", doc.RunID, doc.GeneratedAt, len(doc.Files))

	shown := doc.Files
	if inventoryLimit > 0 && len(shown) > inventoryLimit {
		shown = shown[:inventoryLimit]
	}

	rows := make([]table.Row, 0, len(shown))
	for _, entry := range shown {
		rows = append(rows, table.Row{entry.CurrentName, entry.Location, fmt.Sprintf("%.2f", entry.SizeMB), entry.Modified})
	}
	renderTable(os.Stdout, table.Row{"Name", "Location", "MB", "Modified"}, rows)
	if len(shown) < len(doc.Files) {
		cmd.Printf("... and %d more\n", len(doc.Files)-len(shown))
	}

	if inventoryJSONOut != "" {
		if err := inventoryfile.NewStore(inventoryJSONOut).WriteJSON(doc); err != nil {
			return err
		}
		cmd.Printf("JSON written to %s\n", inventoryJSONOut)
	}
	if inventoryCSVOut != "" {
		if err := inventoryfile.WriteCSV(inventoryCSVOut, doc.Files); err != nil {
			return err
		}
		cmd.Printf("CSV written to %s\n", inventoryCSVOut)
	}
	return nil
}
