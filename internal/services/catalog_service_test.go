package services_test

import (
	"errors"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"minimarket/internal/repos"
	"minimarket/internal/services"
)

func TestCatalogService_MissingProductIsNilNotError(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	svc := services.NewCatalogService(db)

	p, err := svc.GetProduct(99999)
	if err != nil {
		t.Fatalf("missing product must not error, got %v", err)
	}
	if p != nil {
		t.Fatalf("want nil product, got %+v", p)
	}

	cat, err := svc.GetCategory(99999)
	if err != nil || cat != nil {
		t.Fatalf("want nil category without error, got %+v / %v", cat, err)
	}
}

func TestCatalogService_ToggleAndDelete(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	svc := services.NewCatalogService(db)

	if err := svc.DeactivateProduct(2); err != nil {
		t.Fatal(err)
	}
	p, err := svc.GetProduct(2)
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Active {
		t.Fatalf("product 2 should be inactive: %+v", p)
	}
	if err := svc.ActivateProduct(2); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeactivateCategory(2); err != nil {
		t.Fatal(err)
	}
	cat, err := svc.GetCategory(2)
	if err != nil {
		t.Fatal(err)
	}
	if cat == nil || cat.Active {
		t.Fatalf("category 2 should be inactive: %+v", cat)
	}
	if err := svc.ActivateCategory(2); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteProduct(4); err != nil {
		t.Fatal(err)
	}
	if p, _ := svc.GetProduct(4); p != nil {
		t.Fatalf("product 4 should be gone, got %+v", p)
	}
}

func TestCatalogService_WrapsDataAccessFailures(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	svc := services.NewCatalogService(db)
	_ = db.Close()

	_, err = svc.ListProducts()
	var se *services.StoreError
	if !errors.As(err, &se) {
		t.Fatalf("want StoreError, got %T: %v", err, err)
	}

	_, err = svc.GetProduct(1)
	if !errors.As(err, &se) {
		t.Fatalf("want StoreError from get, got %T: %v", err, err)
	}
}
