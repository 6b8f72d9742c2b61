package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/models"
)

func TestSeededListReturnsFullSetInOrder(t *testing.T) {
	repo := NewSeededDesignProjectRepository()

	projects, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(projects) != len(seedDesignProjects) {
		t.Fatalf("List() returned %d records, want %d", len(projects), len(seedDesignProjects))
	}

	for i, p := range projects {
		if p.Title != seedDesignProjects[i].Title {
			t.Errorf("record %d: got title %q, want %q (insertion order not preserved)",
				i, p.Title, seedDesignProjects[i].Title)
		}
		if p.ID == "" {
			t.Errorf("record %d (%s): empty id", i, p.Title)
		}
	}
}

func TestListAllSentinelMatchesUnfiltered(t *testing.T) {
	repo := NewSeededDesignProjectRepository()
	ctx := context.Background()

	all, _ := repo.List(ctx, "")
	sentinel, _ := repo.List(ctx, CategoryAll)

	if len(all) != len(sentinel) {
		t.Errorf("List(%q) returned %d records, List(\"\") returned %d", CategoryAll, len(sentinel), len(all))
	}
}

func TestListCategoryPartitionsSeedSet(t *testing.T) {
	repo := NewSeededDesignProjectRepository()
	ctx := context.Background()

	all, _ := repo.List(ctx, "")

	categories := make(map[string]bool)
	for _, p := range all {
		categories[p.Category] = true
	}

	seen := make(map[string]bool)
	total := 0
	for c := range categories {
		filtered, err := repo.List(ctx, c)
		if err != nil {
			t.Fatalf("List(%q) error: %v", c, err)
		}
		for _, p := range filtered {
			if p.Category != c {
				t.Errorf("List(%q) returned record %q with category %q", c, p.Title, p.Category)
			}
			if seen[p.ID] {
				t.Errorf("record %q appeared in more than one category listing", p.Title)
			}
			seen[p.ID] = true
		}
		total += len(filtered)
	}

	if total != len(all) {
		t.Errorf("union of category listings has %d records, want %d", total, len(all))
	}
}

func TestListUnknownCategoryReturnsEmpty(t *testing.T) {
	repo := NewSeededDesignProjectRepository()

	projects, err := repo.List(context.Background(), "NoSuchCategory")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("List(\"NoSuchCategory\") returned %d records, want 0", len(projects))
	}
}

func TestGetRoundTripsEveryListedID(t *testing.T) {
	repo := NewSeededDesignProjectRepository()
	ctx := context.Background()

	all, _ := repo.List(ctx, "")
	for _, p := range all {
		got, err := repo.Get(ctx, p.ID)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", p.ID, err)
		}
		if got.ID != p.ID {
			t.Errorf("Get(%q) returned id %q", p.ID, got.ID)
		}
	}
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	repo := NewSeededDesignProjectRepository()

	_, err := repo.Get(context.Background(), "nonexistent-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get(\"nonexistent-id\") error = %v, want ErrNotFound", err)
	}
}

func TestListFeaturedReturnsExactlyFeaturedSubset(t *testing.T) {
	repo := NewSeededDesignProjectRepository()
	ctx := context.Background()

	featured, err := repo.ListFeatured(ctx)
	if err != nil {
		t.Fatalf("ListFeatured() error: %v", err)
	}

	for _, p := range featured {
		if !p.Featured {
			t.Errorf("ListFeatured() returned non-featured record %q", p.Title)
		}
	}

	all, _ := repo.List(ctx, "")
	wantCount := 0
	for _, p := range all {
		if p.Featured {
			wantCount++
		}
	}
	if len(featured) != wantCount {
		t.Errorf("ListFeatured() returned %d records, want %d", len(featured), wantCount)
	}
}

func TestCreateAssignsUniqueIDAndNormalizesOptionals(t *testing.T) {
	repo := NewDesignProjectRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.CreateDesignProjectRequest{
		Title:    "Test Mark",
		Category: "Logo Design",
		Year:     2021,
		ImageURL: "/assets/test.png",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if created.ID == "" {
		t.Error("Create() did not assign an id")
	}
	if created.Description != nil || created.ClientName != nil || created.ProjectType != nil {
		t.Error("absent optional fields should stay nil")
	}
	if created.Featured {
		t.Error("absent featured flag should default to false")
	}
	if created.Tools != nil {
		t.Error("absent tools list should stay nil")
	}

	second, _ := repo.Create(ctx, &models.CreateDesignProjectRequest{
		Title:    "Another Mark",
		Category: "Branding",
		Year:     2022,
		ImageURL: "/assets/other.png",
	})
	if second.ID == created.ID {
		t.Error("Create() reused an id")
	}
}
