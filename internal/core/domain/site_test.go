package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLotSlotPageSerialisation(t *testing.T) {
	// Lots without a platmap page still emit "page": null; the frontend
	// reads the field unconditionally.
	data, err := json.Marshal(LotSlot{ID: "lot-1", Number: "Lot 1"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"page":null`)

	page := 4
	data, err = json.Marshal(LotSlot{ID: "lot-2", Number: "Lot 2", Page: &page})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"page":4`)
}

func TestSiteStructureSerialisesEmptySections(t *testing.T) {
	structure := SiteStructure{
		SiteName:    "Verella Court",
		Plans:       []PlanSlot{},
		Lots:        []LotSlot{},
		ProjectDocs: []DocSlot{},
		Photos:      []PhotoSlot{},
	}

	data, err := json.Marshal(structure)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, `"siteName":"Verella Court"`)
	assert.Contains(t, content, `"plans":[]`)
	assert.Contains(t, content, `"projectDocs":[]`)
	assert.NotContains(t, content, "presentation", "nil sections are omitted")
}
