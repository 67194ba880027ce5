package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mstore/storefront-backend/config"
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/internal/db"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Catalog importer. Expects an XLSX workbook with two sheets:
//
//	Collections: title
//	Products:    title | slug | unit_price | inventory | collection | description
//
// Collections are created first; products reference them by title.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	collectionRepo := repository.NewCollectionRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		log.Fatal("Failed to open XLSX file:", err)
	}
	defer f.Close()

	collectionIDs, err := importCollections(f, collectionRepo)
	if err != nil {
		log.Fatal("Failed to import collections:", err)
	}
	fmt.Printf("Collections imported: %d\n", len(collectionIDs))

	products, skipped, err := readProducts(f, collectionIDs)
	if err != nil {
		log.Fatal("Failed to read products:", err)
	}
	fmt.Printf("Products to import: %d (skipped %d rows)\n", len(products), skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 1000
	if err := productRepo.BulkCreate(products, batchSize); err != nil {
		log.Fatal("Failed to bulk create products:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(products))
}

func importCollections(f *excelize.File, repo repository.CollectionRepository) (map[string]uint, error) {
	rows, err := f.GetRows("Collections")
	if err != nil {
		return nil, fmt.Errorf("failed to read Collections sheet: %w", err)
	}

	ids := make(map[string]uint)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 1 {
			continue
		}
		title := strings.TrimSpace(row[0])
		if title == "" {
			continue
		}
		if _, seen := ids[title]; seen {
			continue
		}

		collection := model.Collection{Title: title}
		if err := repo.Create(&collection); err != nil {
			return nil, err
		}
		ids[title] = collection.ID
	}
	return ids, nil
}

func readProducts(f *excelize.File, collectionIDs map[string]uint) ([]model.Product, int, error) {
	rows, err := f.GetRows("Products")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read Products sheet: %w", err)
	}

	var products []model.Product
	seenSlugs := make(map[string]bool)
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}
		if len(row) < 5 {
			skipped++
			continue
		}

		title := strings.TrimSpace(row[0])
		slug := strings.TrimSpace(row[1])
		priceStr := strings.TrimSpace(row[2])
		inventoryStr := strings.TrimSpace(row[3])
		collectionTitle := strings.TrimSpace(row[4])

		if title == "" || slug == "" || priceStr == "" || collectionTitle == "" {
			skipped++
			continue
		}
		if seenSlugs[slug] {
			skipped++
			continue
		}

		unitPrice, err := decimal.NewFromString(priceStr)
		if err != nil || unitPrice.IsNegative() {
			skipped++
			continue
		}

		inventory := 0
		if inventoryStr != "" {
			if _, err := fmt.Sscanf(inventoryStr, "%d", &inventory); err != nil || inventory < 0 {
				skipped++
				continue
			}
		}

		collectionID, ok := collectionIDs[collectionTitle]
		if !ok {
			skipped++
			continue
		}

		product := model.Product{
			Title:        title,
			Slug:         slug,
			UnitPrice:    unitPrice,
			Inventory:    inventory,
			CollectionID: collectionID,
		}
		if len(row) > 5 {
			if description := strings.TrimSpace(row[5]); description != "" {
				product.Description = &description
			}
		}

		seenSlugs[slug] = true
		products = append(products, product)
	}

	return products, skipped, nil
}
