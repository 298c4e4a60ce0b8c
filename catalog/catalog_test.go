package catalog

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/questboard/questboard/models"
	"github.com/questboard/questboard/store"
	"github.com/questboard/questboard/testutil"
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return New(mem, mem), mem
}

func TestSearchFacetsComputedBeforePagination(t *testing.T) {
	svc, mem := newTestService(t)

	testutil.SeedCampaign(t, mem, "a",
		testutil.WithDuration(2),
		testutil.WithTags("rpg"))
	testutil.SeedCampaign(t, mem, "b",
		testutil.WithDuration(5),
		testutil.WithTags("rpg", "horror"))

	resp, err := svc.Search(context.Background(), models.Filters{Tags: []string{"rpg"}})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if resp.Total != 2 {
		t.Errorf("Expected total 2, got %d", resp.Total)
	}
	if resp.Facets.Duration.Min != 2 || resp.Facets.Duration.Max != 5 {
		t.Errorf("Expected duration facet {2,5}, got {%v,%v}",
			resp.Facets.Duration.Min, resp.Facets.Duration.Max)
	}
	// "horror" comes from B even though the filter only asked for "rpg"
	if !reflect.DeepEqual(resp.Facets.Tags, []string{"horror", "rpg"}) {
		t.Errorf("Expected tags facet [horror rpg], got %v", resp.Facets.Tags)
	}

	resp, err = svc.Search(context.Background(), models.Filters{Tags: []string{"rpg", "horror"}})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].ID != "b" {
		t.Errorf("Expected only campaign b, got total=%d items=%v", resp.Total, resp.Items)
	}
}

func TestSearchTextFilter(t *testing.T) {
	svc, mem := newTestService(t)

	testutil.SeedCampaign(t, mem, "a", testutil.WithTitle("Dragon Heist"))
	testutil.SeedCampaign(t, mem, "b",
		testutil.WithTitle("Tomb Crawl"),
		testutil.WithDescription("Face the dragon at the bottom"))
	testutil.SeedCampaign(t, mem, "c", testutil.WithTitle("Space Opera"))

	resp, err := svc.Search(context.Background(), models.Filters{Query: "DRAGON"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	// Case-insensitive, OR'd across title and description
	if resp.Total != 2 {
		t.Errorf("Expected 2 matches, got %d", resp.Total)
	}
	for _, item := range resp.Items {
		if item.ID == "c" {
			t.Error("Non-matching campaign returned")
		}
	}
}

func TestSearchPagination(t *testing.T) {
	svc, mem := newTestService(t)

	for i := 0; i < 25; i++ {
		testutil.SeedCampaign(t, mem, string(rune('a'+i)))
	}

	tests := []struct {
		name      string
		page      int
		wantItems int
		wantPage  int
	}{
		{"first page full", 1, 10, 1},
		{"last partial page", 3, 5, 3},
		{"page beyond last is empty not an error", 4, 0, 4},
		{"zero page clamps to 1", 0, 10, 1},
		{"absurd page is empty not a panic", math.MaxInt, 0, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Search(context.Background(), models.Filters{Page: tt.page})
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(resp.Items) != tt.wantItems {
				t.Errorf("Expected %d items, got %d", tt.wantItems, len(resp.Items))
			}
			if resp.Total != 25 {
				t.Errorf("Expected total 25 regardless of page, got %d", resp.Total)
			}
			if resp.Page != tt.wantPage {
				t.Errorf("Expected page %d, got %d", tt.wantPage, resp.Page)
			}
			if resp.PageSize != PageSize {
				t.Errorf("Expected pageSize %d, got %d", PageSize, resp.PageSize)
			}
		})
	}
}

func TestSearchSortNewAcrossPages(t *testing.T) {
	svc, mem := newTestService(t)

	base := time.Now()
	for i := 0; i < 15; i++ {
		testutil.SeedCampaign(t, mem, string(rune('a'+i)),
			testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Hour)))
	}

	var all []models.CatalogItem
	for page := 1; page <= 2; page++ {
		resp, err := svc.Search(context.Background(), models.Filters{Sort: models.SortNew, Page: page})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		all = append(all, resp.Items...)
	}

	if len(all) != 15 {
		t.Fatalf("Expected 15 items across pages, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Errorf("Items not in descending created_at order at index %d", i)
		}
	}
}

func TestSearchSortTitle(t *testing.T) {
	svc, mem := newTestService(t)

	testutil.SeedCampaign(t, mem, "1", testutil.WithTitle("Curse of Strahd"))
	testutil.SeedCampaign(t, mem, "2", testutil.WithTitle("Abomination Vaults"))
	testutil.SeedCampaign(t, mem, "3", testutil.WithTitle("Blades in the Dark"))

	resp, err := svc.Search(context.Background(), models.Filters{Sort: models.SortTitle})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	for i := 1; i < len(resp.Items); i++ {
		if resp.Items[i].Title < resp.Items[i-1].Title {
			t.Errorf("Titles not in ascending order: %q before %q",
				resp.Items[i-1].Title, resp.Items[i].Title)
		}
	}
}

func TestSearchSortDurationMissingTreatedAsZero(t *testing.T) {
	svc, mem := newTestService(t)

	testutil.SeedCampaign(t, mem, "long", testutil.WithDuration(8))
	testutil.SeedCampaign(t, mem, "unset")
	testutil.SeedCampaign(t, mem, "short", testutil.WithDuration(2))

	resp, err := svc.Search(context.Background(), models.Filters{Sort: models.SortDuration})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	got := []string{resp.Items[0].ID, resp.Items[1].ID, resp.Items[2].ID}
	want := []string{"unset", "short", "long"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
}

func TestSearchSortAgeParsesLeadingDigits(t *testing.T) {
	svc, mem := newTestService(t)

	testutil.SeedCampaign(t, mem, "teen", testutil.WithAge("16+"))
	testutil.SeedCampaign(t, mem, "kids", testutil.WithAge("8+"))
	testutil.SeedCampaign(t, mem, "unrated") // no age sorts as 0
	testutil.SeedCampaign(t, mem, "tween", testutil.WithAge("12+"))

	resp, err := svc.Search(context.Background(), models.Filters{Sort: models.SortAge})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	var got []string
	for _, item := range resp.Items {
		got = append(got, item.ID)
	}
	want := []string{"unrated", "kids", "tween", "teen"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
}

func TestSearchPopularOrderDelegatedToAggregator(t *testing.T) {
	svc, mem := newTestService(t)

	testutil.SeedCampaign(t, mem, "a")
	testutil.SeedCampaign(t, mem, "b")
	testutil.SeedCampaign(t, mem, "c")
	testutil.SeedVotes(t, mem, "b", 5)
	testutil.SeedVotes(t, mem, "c", 2)

	resp, err := svc.Search(context.Background(), models.Filters{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	var got []string
	for _, item := range resp.Items {
		got = append(got, item.ID)
	}
	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected popularity order %v, got %v", want, got)
	}

	if resp.Items[0].Votes != 5 || resp.Items[1].Votes != 2 || resp.Items[2].Votes != 0 {
		t.Errorf("Vote counts not merged correctly: %d, %d, %d",
			resp.Items[0].Votes, resp.Items[1].Votes, resp.Items[2].Votes)
	}
}

func TestSearchAgesFacetSortedLexically(t *testing.T) {
	svc, mem := newTestService(t)

	testutil.SeedCampaign(t, mem, "a", testutil.WithAge("8+"))
	testutil.SeedCampaign(t, mem, "b", testutil.WithAge("12+"))
	testutil.SeedCampaign(t, mem, "c", testutil.WithAge("16+"))

	resp, err := svc.Search(context.Background(), models.Filters{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	// Lexical, not numeric: "12+" and "16+" sort before "8+"
	want := []string{"12+", "16+", "8+"}
	if !reflect.DeepEqual(resp.Facets.Ages, want) {
		t.Errorf("Expected ages facet %v, got %v", want, resp.Facets.Ages)
	}
}

func TestSearchEmptyResultFacets(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Search(context.Background(), models.Filters{Query: "nothing matches this"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if resp.Total != 0 || len(resp.Items) != 0 {
		t.Errorf("Expected empty result, got total=%d items=%d", resp.Total, len(resp.Items))
	}
	if resp.Facets.Duration.Min != 0 || resp.Facets.Duration.Max != 0 {
		t.Errorf("Expected zero duration facet, got %+v", resp.Facets.Duration)
	}
	if resp.Facets.Players.Min != 0 || resp.Facets.Players.Max != 0 {
		t.Errorf("Expected zero players facet, got %+v", resp.Facets.Players)
	}
}

func TestSearchIdempotent(t *testing.T) {
	svc, mem := newTestService(t)

	testutil.SeedCampaign(t, mem, "a", testutil.WithTags("rpg"), testutil.WithDuration(3))
	testutil.SeedCampaign(t, mem, "b", testutil.WithTags("rpg"), testutil.WithDuration(6))
	testutil.SeedVotes(t, mem, "a", 3)

	filters := models.Filters{Tags: []string{"rpg"}, Sort: models.SortTitle}
	first, err := svc.Search(context.Background(), filters)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	second, err := svc.Search(context.Background(), filters)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Identical searches against unchanged data returned different results")
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	svc, mem := newTestService(t)
	testutil.SeedCampaign(t, mem, "a")
	mem.FailWith(errors.New("connection refused"))

	if _, err := svc.Search(context.Background(), models.Filters{}); err == nil {
		t.Error("Expected error when datastore is unreachable")
	}
}

func TestGetBySlug(t *testing.T) {
	svc, mem := newTestService(t)

	testutil.SeedCampaign(t, mem, "pub")
	testutil.SeedCampaign(t, mem, "hidden", testutil.WithStatus(models.StatusDraft))
	testutil.SeedVotes(t, mem, "pub", 4)

	detail, err := svc.GetBySlug(context.Background(), "slug-pub")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if detail.ID != "pub" || detail.Votes != 4 {
		t.Errorf("Expected campaign pub with 4 votes, got %s with %d", detail.ID, detail.Votes)
	}

	// Draft and nonexistent slugs are indistinguishable
	_, draftErr := svc.GetBySlug(context.Background(), "slug-hidden")
	_, missingErr := svc.GetBySlug(context.Background(), "no-such-slug")
	if !errors.Is(draftErr, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for draft slug, got %v", draftErr)
	}
	if !errors.Is(missingErr, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing slug, got %v", missingErr)
	}
	if draftErr.Error() != missingErr.Error() {
		t.Error("Draft and missing slugs must produce identical errors")
	}
}
