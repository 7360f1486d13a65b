package repository

import (
	"context"
	"testing"

	"givehope_backend/internal/catalog/data"
	"givehope_backend/internal/catalog/domain"
	"givehope_backend/platform/apperr"
)

func newEmbedded(t *testing.T) *Repo {
	t.Helper()
	repo, err := New(data.ProductJSON)
	if err != nil {
		t.Fatalf("embedded catalog does not parse: %v", err)
	}
	return repo
}

func TestEmbeddedCatalogIsConsistent(t *testing.T) {
	ctx := context.Background()
	repo := newEmbedded(t)

	products, _ := repo.List(ctx)
	if len(products) == 0 {
		t.Fatal("expected products in the embedded catalog")
	}
	for _, p := range products {
		if _, err := repo.GetCharityByID(ctx, p.Charity); err != nil {
			t.Fatalf("product %q references unknown charity %q", p.ID, p.Charity)
		}
		if p.Price <= 0 {
			t.Fatalf("product %q has non-positive price", p.ID)
		}
	}
}

func TestGetByID(t *testing.T) {
	repo := newEmbedded(t)

	p, err := repo.GetByID(context.Background(), "teddy-bear")
	if err != nil || p.Price != 1200 {
		t.Fatalf("unexpected product %+v err=%v", p, err)
	}

	_, err = repo.GetByID(context.Background(), "missing")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	repo := newEmbedded(t)

	byTag, _ := repo.Search(context.Background(), "ПОДАРОК")
	if len(byTag) != 2 {
		t.Fatalf("expected 2 tag matches, got %d", len(byTag))
	}

	byName, _ := repo.Search(context.Background(), "мишка")
	if len(byName) != 1 || byName[0].ID != "teddy-bear" {
		t.Fatalf("unexpected name matches %+v", byName)
	}

	none, _ := repo.Search(context.Background(), "нет такого товара")
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestListProductsFilters(t *testing.T) {
	ctx := context.Background()
	repo := newEmbedded(t)
	all, _ := repo.List(ctx)

	items, total, _ := repo.ListProducts(ctx, ListProductsParams{Category: AllCategories})
	if total != len(all) || len(items) != len(all) {
		t.Fatalf("expected %q to list everything, got %d", AllCategories, total)
	}

	_, total, _ = repo.ListProducts(ctx, ListProductsParams{Category: "toys"})
	if total != 3 {
		t.Fatalf("expected 3 toys, got %d", total)
	}

	items, total, _ = repo.ListProducts(ctx, ListProductsParams{Search: "мишка", Category: "books"})
	if total != 1 || items[0].ID != "teddy-bear" {
		t.Fatalf("expected search to take precedence over category, got %+v", items)
	}
}

func TestListProductsPages(t *testing.T) {
	ctx := context.Background()
	repo := newEmbedded(t)

	first, total, _ := repo.ListProducts(ctx, ListProductsParams{Offset: 0, Limit: 4})
	last, _, _ := repo.ListProducts(ctx, ListProductsParams{Offset: 8, Limit: 4})
	beyond, _, _ := repo.ListProducts(ctx, ListProductsParams{Offset: 40, Limit: 4})

	if total != 10 || len(first) != 4 || len(last) != 2 || len(beyond) != 0 {
		t.Fatalf("unexpected paging total=%d first=%d last=%d beyond=%d", total, len(first), len(last), len(beyond))
	}
}

func TestNewFromDatasetRejectsDuplicateIDs(t *testing.T) {
	ds := domain.Dataset{Products: []domain.Product{{ID: "a"}, {ID: "a"}}}
	if _, err := NewFromDataset(ds); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewRejectsMalformedJSON(t *testing.T) {
	if _, err := New([]byte("{")); err == nil {
		t.Fatal("expected parse error")
	}
}
