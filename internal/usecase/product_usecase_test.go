package usecase_test

import (
	"errors"
	"io"
	"testing"

	"product_service/internal/domain"
	"product_service/internal/repository"
	"product_service/internal/usecase"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newService(t *testing.T) usecase.ProductService {
	t.Helper()
	return usecase.NewProductService(repository.NewMemoryProductRepository(testLogger()), testLogger())
}

func strPtr(s string) *string { return &s }

func input(name, price string) domain.ProductInput {
	in := domain.ProductInput{Name: name}
	in.Price = domain.PriceInput{Raw: price, Present: price != ""}
	return in
}

// untouchedRepo fails the test if the service reaches the store.
type untouchedRepo struct {
	t *testing.T
}

func (r *untouchedRepo) Create(*domain.Product) (*domain.Product, error) {
	r.t.Fatal("store must not be invoked")
	return nil, nil
}
func (r *untouchedRepo) GetByID(int64) (*domain.Product, error) {
	r.t.Fatal("store must not be invoked")
	return nil, nil
}
func (r *untouchedRepo) List(domain.PageRequest) ([]domain.Product, int64, error) {
	r.t.Fatal("store must not be invoked")
	return nil, 0, nil
}
func (r *untouchedRepo) Update(*domain.Product) (*domain.Product, error) {
	r.t.Fatal("store must not be invoked")
	return nil, nil
}
func (r *untouchedRepo) Delete(int64) error {
	r.t.Fatal("store must not be invoked")
	return nil
}

func TestCreate_Valid(t *testing.T) {
	svc := newService(t)

	in := input("Laptop", "999.99")
	in.Description = strPtr("High-performance laptop")
	created, err := svc.Create(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if created.CreatedAt == nil || created.CreatedAt.IsZero() {
		t.Fatal("expected assigned createdAt")
	}
	if created.Name != "Laptop" {
		t.Fatalf("unexpected name %q", created.Name)
	}
	if created.Description == nil || *created.Description != "High-performance laptop" {
		t.Fatalf("unexpected description %v", created.Description)
	}
	if created.Price.String() != "999.99" {
		t.Fatalf("expected price exactly 999.99, got %s", created.Price.String())
	}
}

func TestCreate_ValidationSkipsStore(t *testing.T) {
	svc := usecase.NewProductService(&untouchedRepo{t: t}, testLogger())

	cases := []struct {
		name       string
		input      domain.ProductInput
		wantFields []string
	}{
		{"empty name", input("", "10"), []string{"name"}},
		{"short name", input("ab", "10"), []string{"name"}},
		{"missing price", input("Laptop", ""), []string{"price"}},
		{"price too small", input("Laptop", "0.001"), []string{"price"}},
		{"every violation reported", input("", ""), []string{"name", "price"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.input)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(ve.Fields) != len(tc.wantFields) {
				t.Fatalf("expected %d field errors, got %v", len(tc.wantFields), ve.Fields)
			}
			for _, field := range tc.wantFields {
				if _, ok := ve.Fields[field]; !ok {
					t.Fatalf("expected error for field %q, got %v", field, ve.Fields)
				}
			}
		})
	}
}

func TestCreate_MalformedPrice(t *testing.T) {
	svc := usecase.NewProductService(&untouchedRepo{t: t}, testLogger())

	_, err := svc.Create(input("Laptop", "abc"))
	var nfe *domain.NumberFormatError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NumberFormatError, got %v", err)
	}
	if nfe.Raw != "abc" {
		t.Fatalf("expected raw 'abc', got %q", nfe.Raw)
	}
}

func TestGetByID_RoundTrip(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(input("Laptop", "999.99"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.Name != created.Name || !got.Price.Equal(created.Price) {
		t.Fatalf("round-trip mismatch: created %+v, got %+v", created, got)
	}
	if !got.CreatedAt.Equal(*created.CreatedAt) {
		t.Fatalf("createdAt mismatch: %v vs %v", got.CreatedAt, created.CreatedAt)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetByID(42)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Error() != "Product not found with id: 42" {
		t.Fatalf("unexpected message %q", nf.Error())
	}
}

func TestUpdate_NonexistentShortCircuitsBeforeValidation(t *testing.T) {
	svc := newService(t)

	// The input is invalid too, but existence is checked first.
	_, err := svc.Update(7, input("", ""))
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdate_PreservesIDAndCreatedAt(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(input("Laptop", "999.99"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := input("Gaming Laptop", "1299.50")
	in.Description = strPtr("RTX graphics")
	updated, err := svc.Update(created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed: %d -> %d", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(*created.CreatedAt) {
		t.Fatalf("createdAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if updated.Name != "Gaming Laptop" || updated.Price.String() != "1299.5" {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	if updated.Description == nil || *updated.Description != "RTX graphics" {
		t.Fatalf("description not replaced: %v", updated.Description)
	}
}

func TestUpdate_ValidationLeavesRecordUnchanged(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(input("Laptop", "999.99"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(created.ID, input("ab", "10")); err == nil {
		t.Fatal("expected validation failure")
	}

	got, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Laptop" || got.Price.String() != "999.99" {
		t.Fatalf("record partially applied: %+v", got)
	}
}

func TestDelete_ThenGetNotFound(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(input("Laptop", "999.99"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = svc.GetByID(created.ID)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := newService(t)

	err := svc.Delete(99)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListPage_Totals(t *testing.T) {
	svc := newService(t)

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(input("Product", "10")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := svc.ListPage(domain.PageRequest{Page: 0, Size: 2, Direction: domain.SortAsc})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalElements != 5 {
		t.Fatalf("expected 5 total elements, got %d", page.TotalElements)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
	}
	if len(page.Content) != 2 {
		t.Fatalf("expected 2 items on first page, got %d", len(page.Content))
	}
}

func TestListPage_BeyondLastPage(t *testing.T) {
	svc := newService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(input("Product", "10")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := svc.ListPage(domain.PageRequest{Page: 9, Size: 2, Direction: domain.SortAsc})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Content) != 0 {
		t.Fatalf("expected empty content, got %d items", len(page.Content))
	}
	if page.TotalElements != 3 || page.TotalPages != 2 {
		t.Fatalf("totals changed: elements=%d pages=%d", page.TotalElements, page.TotalPages)
	}
}

func TestListPage_Empty(t *testing.T) {
	svc := newService(t)

	page, err := svc.ListPage(domain.PageRequest{Size: 20, Direction: domain.SortAsc})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalElements != 0 || page.TotalPages != 0 {
		t.Fatalf("expected zero totals, got elements=%d pages=%d", page.TotalElements, page.TotalPages)
	}
}

func TestListPage_SortNameAscending(t *testing.T) {
	svc := newService(t)

	for _, name := range []string{"Product B", "Product A", "Product C"} {
		if _, err := svc.Create(input(name, "10")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := svc.ListPage(domain.PageRequest{Size: 20, SortKey: "name", Direction: domain.SortAsc})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Product A", "Product B", "Product C"}
	for i, name := range want {
		if page.Content[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, page.Content[i].Name)
		}
	}
}

func TestListPage_SortPriceDescending(t *testing.T) {
	svc := newService(t)

	for _, price := range []string{"200", "100", "300"} {
		if _, err := svc.Create(input("Product", price)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := svc.ListPage(domain.PageRequest{Size: 20, SortKey: "price", Direction: domain.SortDesc})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"300", "200", "100"}
	for i, price := range want {
		if page.Content[i].Price.String() != price {
			t.Fatalf("position %d: expected %s, got %s", i, price, page.Content[i].Price.String())
		}
	}
}
