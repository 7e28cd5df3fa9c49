package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// seedEntry pairs a product record with its description body
type seedEntry struct {
	file        string
	record      productRecord
	description string
}

// Seed writes a small demo catalog into dir: product records under
// products/, their descriptions and media under assets/. Returns the number
// of products written.
func Seed(dir string) (int, error) {
	entries := seedProducts()

	for _, sub := range []string{"products", "assets/descriptions", "assets/images", "assets/models"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return 0, fmt.Errorf("failed to create %s: %w", sub, err)
		}
	}

	for _, entry := range entries {
		data, err := toml.Marshal(entry.record)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal %s: %w", entry.record.SKU, err)
		}
		path := filepath.Join(dir, "products", entry.file+".toml")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", path, err)
		}

		if entry.record.Description != "" {
			descPath := filepath.Join(dir, entry.record.Description)
			if err := os.WriteFile(descPath, []byte(entry.description), 0644); err != nil {
				return 0, fmt.Errorf("failed to write %s: %w", descPath, err)
			}
		}

		for _, m := range entry.record.Media {
			assetPath := filepath.Join(dir, m.Source)
			placeholder := []byte("placeholder asset: " + m.Source + "\n")
			if err := os.WriteFile(assetPath, placeholder, 0644); err != nil {
				return 0, fmt.Errorf("failed to write %s: %w", assetPath, err)
			}
		}
	}

	return len(entries), nil
}

func seedProducts() []seedEntry {
	return []seedEntry{
		{
			file: "sunflower-oil-1l",
			record: productRecord{
				SKU:         "OIL-SUN-1L",
				Name:        "Cold Pressed Sunflower Oil",
				Category:    "Retail Pack",
				PricePaise:  24900,
				Unit:        "1 L",
				Tags:        []string{"oil", "cold-pressed", "heart-healthy"},
				Description: "assets/descriptions/sunflower-oil.md",
				MinQty:      1,
				MaxQty:      24,
				Media: []mediaRecord{
					{Label: "Front", Source: "assets/images/oil-sun-1l.jpg"},
					{Label: "Bottle", Source: "assets/models/oil-bottle-1l.glb"},
				},
			},
			description: "# Cold Pressed Sunflower Oil\n\nSingle-origin sunflower seeds, pressed within a week of harvest.\n\n- High smoke point, suits deep frying\n- No solvent extraction\n- Batch-tested for freshness\n",
		},
		{
			file: "sunflower-oil-5l",
			record: productRecord{
				SKU:         "OIL-SUN-5L",
				Name:        "Cold Pressed Sunflower Oil",
				Category:    "Family Pack",
				PricePaise:  109900,
				Unit:        "5 L",
				Tags:        []string{"oil", "cold-pressed", "value-pack"},
				Description: "assets/descriptions/sunflower-oil-5l.md",
				MinQty:      1,
				MaxQty:      10,
				Media: []mediaRecord{
					{Label: "Front", Source: "assets/images/oil-sun-5l.jpg"},
				},
			},
			description: "# Cold Pressed Sunflower Oil\n\nFamily-size can of our most popular cooking oil.\n\n- Same pressing as the 1 L bottle\n- Food-grade tin keeps light out\n",
		},
		{
			file: "groundnut-oil-1l",
			record: productRecord{
				SKU:         "OIL-GN-1L",
				Name:        "Stone Ground Groundnut Oil",
				Category:    "Retail Pack",
				PricePaise:  32900,
				Unit:        "1 L",
				Tags:        []string{"oil", "stone-ground"},
				Description: "assets/descriptions/groundnut-oil.md",
				MinQty:      1,
				MaxQty:      24,
				Media: []mediaRecord{
					{Label: "Front", Source: "assets/images/oil-gn-1l.jpg"},
				},
			},
			description: "# Stone Ground Groundnut Oil\n\nTraditional wooden-press groundnut oil with a deep nutty aroma.\n\n- Unrefined and unbleached\n- Best for tempering and shallow frying\n",
		},
		{
			file: "ponni-rice-1kg",
			record: productRecord{
				SKU:         "RICE-PON-1KG",
				Name:        "Aged Ponni Rice",
				Category:    "Retail Pack",
				PricePaise:  8900,
				Unit:        "1 kg",
				Tags:        []string{"rice", "aged"},
				Description: "assets/descriptions/ponni-rice.md",
				MinQty:      1,
				MaxQty:      50,
				Media: []mediaRecord{
					{Label: "Pack", Source: "assets/images/rice-pon-1kg.jpg"},
				},
			},
			description: "# Aged Ponni Rice\n\nTwelve-month aged ponni rice that cooks fluffy and separate.\n\n- Low stickiness\n- Mills within a day's drive of the farm\n",
		},
		{
			file: "ponni-rice-5kg",
			record: productRecord{
				SKU:         "RICE-PON-5KG",
				Name:        "Aged Ponni Rice",
				Category:    "Family Pack",
				PricePaise:  41900,
				Unit:        "5 kg",
				Tags:        []string{"rice", "aged", "value-pack"},
				Description: "assets/descriptions/ponni-rice-5kg.md",
				MinQty:      1,
				MaxQty:      20,
				Media: []mediaRecord{
					{Label: "Pack", Source: "assets/images/rice-pon-5kg.jpg"},
				},
			},
			description: "# Aged Ponni Rice\n\nPantry-size bag of our aged ponni rice.\n",
		},
		{
			file: "ponni-rice-25kg",
			record: productRecord{
				SKU:         "RICE-PON-25KG",
				Name:        "Aged Ponni Rice",
				Category:    "Bulk Pack",
				PricePaise:  199900,
				Unit:        "25 kg",
				Tags:        []string{"rice", "aged", "bulk"},
				Description: "assets/descriptions/ponni-rice-bulk.md",
				MinQty:      1,
				MaxQty:      8,
				Media: []mediaRecord{
					{Label: "Sack", Source: "assets/images/rice-pon-25kg.jpg"},
				},
			},
			description: "# Aged Ponni Rice — Bulk\n\nRestaurant sack, stitched jute with inner liner.\n\n- Consistent grain length across batches\n- Institutional invoicing available\n",
		},
		{
			file: "turmeric-200g",
			record: productRecord{
				SKU:         "SPICE-TUR-200G",
				Name:        "Single Estate Turmeric",
				Category:    "Retail Pack",
				PricePaise:  14900,
				Unit:        "200 g",
				Tags:        []string{"spice", "single-estate"},
				Description: "assets/descriptions/turmeric.md",
				MinQty:      1,
				MaxQty:      40,
				Media: []mediaRecord{
					{Label: "Jar", Source: "assets/images/spice-tur-200g.jpg"},
				},
			},
			description: "# Single Estate Turmeric\n\nHigh-curcumin turmeric ground in small batches.\n\n- Curcumin 4.2% by assay\n- Sun-dried, never boiled\n",
		},
		{
			file: "jaggery-1kg",
			record: productRecord{
				SKU:         "SWEET-JAG-1KG",
				Name:        "Palm Jaggery Rounds",
				Category:    "Retail Pack",
				PricePaise:  21900,
				Unit:        "1 kg",
				Tags:        []string{"sweetener", "traditional"},
				Description: "assets/descriptions/jaggery.md",
				MinQty:      1,
				MaxQty:      30,
				Media: []mediaRecord{
					{Label: "Rounds", Source: "assets/images/sweet-jag-1kg.jpg"},
				},
			},
			description: "# Palm Jaggery Rounds\n\nSlow-reduced palm sap set into hand-sized rounds.\n\n- No added sugar or color\n- Melts clean for payasam and coffee\n",
		},
	}
}
