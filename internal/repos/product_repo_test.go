package repos_test

import (
	"database/sql"
	"errors"
	"testing"

	"minimarket/internal/domain"
	"minimarket/internal/repos"
)

func TestProductRepo_ListJoinsCategoryOrderedByID(t *testing.T) {
	db := memdb(t)
	repo := repos.NewProductRepo(db)

	out, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Fatal("no seeded products")
	}
	for i, p := range out {
		if p.CategoryName == "" {
			t.Fatalf("product %d missing joined category name", p.ID)
		}
		if i > 0 && out[i-1].ID >= p.ID {
			t.Fatalf("not ordered by id asc: %d then %d", out[i-1].ID, p.ID)
		}
	}
}

// Save with no id inserts; save with id > 0 updates that row.
func TestProductRepo_SaveInsertThenUpdate(t *testing.T) {
	db := memdb(t)
	repo := repos.NewProductRepo(db)

	before, _ := repo.List()

	err := repo.Save(domain.Product{
		Name: "Avena 500g", CategoryID: 3, Stock: 10, Price: 2.75,
		Code: "PAN-050", MadeOn: "2026-08-15", ExpiresOn: "2026-12-01",
	})
	if err != nil {
		t.Fatal(err)
	}

	after, _ := repo.List()
	if len(after) != len(before)+1 {
		t.Fatalf("insert path: want %d rows, got %d", len(before)+1, len(after))
	}
	inserted := after[len(after)-1]
	if inserted.Name != "Avena 500g" || !inserted.Active {
		t.Fatalf("bad inserted row: %+v", inserted)
	}

	inserted.Price = 3.10
	inserted.Stock = 7
	if err := repo.Save(inserted); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(inserted.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Price != 3.10 || got.Stock != 7 {
		t.Fatalf("update path lost fields: %+v", got)
	}
	final, _ := repo.List()
	if len(final) != len(after) {
		t.Fatalf("update must not insert: %d vs %d rows", len(final), len(after))
	}
}

func TestProductRepo_GetMissingReturnsNoRows(t *testing.T) {
	db := memdb(t)
	repo := repos.NewProductRepo(db)

	_, err := repo.Get(99999)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows, got %v", err)
	}
}

func TestProductRepo_DeleteAndToggle(t *testing.T) {
	db := memdb(t)
	repo := repos.NewProductRepo(db)

	if err := repo.Deactivate(1); err != nil {
		t.Fatal(err)
	}
	p, err := repo.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if p.Active {
		t.Fatal("product 1 should be inactive")
	}

	if err := repo.Activate(1); err != nil {
		t.Fatal(err)
	}
	p, _ = repo.Get(1)
	if !p.Active {
		t.Fatal("product 1 should be active again")
	}

	if err := repo.Delete(1); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Get(1); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want deleted, got %v", err)
	}
}

func TestCategoryRepo_CRUD(t *testing.T) {
	db := memdb(t)
	repo := repos.NewCategoryRepo(db)

	cats, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) == 0 {
		t.Fatal("no seeded categories")
	}

	if err := repo.Save(domain.Category{Name: "Limpieza", Description: "Artículos de limpieza"}); err != nil {
		t.Fatal(err)
	}
	after, _ := repo.List()
	if len(after) != len(cats)+1 {
		t.Fatalf("want %d categories, got %d", len(cats)+1, len(after))
	}
	added := after[len(after)-1]
	if added.Name != "Limpieza" || !added.Active {
		t.Fatalf("bad inserted category: %+v", added)
	}

	added.Description = "Detergentes y jabones"
	if err := repo.Save(added); err != nil {
		t.Fatal(err)
	}
	got, err := repo.Get(added.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "Detergentes y jabones" {
		t.Fatalf("update lost description: %+v", got)
	}

	if err := repo.Deactivate(added.ID); err != nil {
		t.Fatal(err)
	}
	got, _ = repo.Get(added.ID)
	if got.Active {
		t.Fatal("category should be inactive")
	}

	if err := repo.Delete(added.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Get(added.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want deleted, got %v", err)
	}
}
