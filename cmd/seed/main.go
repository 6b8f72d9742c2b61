// Command seed inspects the compiled-in catalog: it builds the seeded
// in-memory repository exactly as the server does and prints the records as
// JSON. Useful for checking what a fresh process will serve without starting
// the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/models"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/repository/memory"
)

func main() {
	category := flag.String("category", "", "only print records in this category (\"All\" or empty prints everything)")
	featured := flag.Bool("featured", false, "only print featured records")
	flag.Parse()

	repo := memory.NewSeededDesignProjectRepository()
	ctx := context.Background()

	var (
		projects []models.DesignProject
		err      error
	)
	if *featured {
		projects, err = repo.ListFeatured(ctx)
	} else {
		projects, err = repo.List(ctx, *category)
	}
	if err != nil {
		log.Fatalf("list seed projects: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(projects); err != nil {
		log.Fatalf("encode seed projects: %v", err)
	}

	fmt.Fprintf(os.Stderr, "%d records\n", len(projects))
}
