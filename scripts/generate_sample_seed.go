//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"pico-pos/internal/catalog"
)

// generateSampleSeed writes the built-in catalogue as seed files for local
// runs and for upload to the seed bucket.
// menu.yaml    plain YAML, SEED_PATH=data/seeds/menu.yaml
// menu.yaml.gz gzipped YAML, same content
func main() {
	dataDir := "data/seeds"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	seed := catalog.DefaultSeed()
	if err := seed.Validate(); err != nil {
		log.Fatalf("Built-in seed is invalid: %v", err)
	}

	for _, filename := range []string{"menu.yaml", "menu.yaml.gz"} {
		filePath := filepath.Join(dataDir, filename)

		if err := createSeedFile(filePath, seed); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d menu items and %d tables\n", filePath, len(seed.Menu), len(seed.Tables))
	}

	fmt.Println("\nSample seed files created successfully!")
	fmt.Println("\nUpload to S3 with:")
	fmt.Println("  aws s3 cp data/seeds/menu.yaml.gz s3://$S3_BUCKET/seeds/menu.yaml.gz")
}

func createSeedFile(filePath string, seed *catalog.Seed) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := catalog.Encode(file, filepath.Base(filePath), seed); err != nil {
		return fmt.Errorf("failed to encode seed: %w", err)
	}

	return nil
}
