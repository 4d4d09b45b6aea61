package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"menuboard/internal/model"
)

// Generates a sample menu seed file for local development.
//
// Usage: go run scripts/generate_sample_menu.go [output-path] [item-count]
func main() {
	outputPath := "data/menu.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	count := 20
	if len(os.Args) > 2 {
		if _, err := fmt.Sscanf(os.Args[2], "%d", &count); err != nil {
			log.Fatalf("invalid item count %q: %v", os.Args[2], err)
		}
	}

	categories := []string{"Pizza", "Pasta", "Salads", "Starters", "Desserts", "Drinks"}
	labels := []string{"", "Bestseller", "Spicy", "Fresh", "Chef's choice"}

	items := make([]model.MenuItem, 0, count)
	for i := 1; i <= count; i++ {
		category := categories[i%len(categories)]
		items = append(items, model.MenuItem{
			ID:          int64(i),
			Name:        fmt.Sprintf("Sample %s %d", category, i),
			Image:       fmt.Sprintf("/images/sample-%d.jpg", i),
			Category:    category,
			Label:       labels[i%len(labels)],
			Price:       fmt.Sprintf("%d.%02d", 3+i%12, (i*25)%100),
			Description: fmt.Sprintf("Sample menu item number %d", i),
		})
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode sample menu: %v", err)
	}

	if err := os.WriteFile(outputPath, append(data, '\n'), 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", outputPath, err)
	}

	fmt.Printf("wrote %d sample menu items to %s\n", len(items), outputPath)
}
