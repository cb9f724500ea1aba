package repository_test

import (
	"errors"
	"sync"
	"testing"

	"product_service/internal/domain"
	"product_service/internal/repository"

	"github.com/shopspring/decimal"
)

func TestMemoryRepo_AssignsSequentialIDs(t *testing.T) {
	repo := repository.NewMemoryProductRepository(testLogger())

	first := create(t, repo, "Product A", "10", nil)
	second := create(t, repo, "Product B", "20", nil)
	if first.ID == 0 || second.ID != first.ID+1 {
		t.Fatalf("expected sequential ids, got %d and %d", first.ID, second.ID)
	}
	if first.CreatedAt == nil || second.CreatedAt == nil {
		t.Fatal("expected assigned createdAt")
	}
}

func TestMemoryRepo_NotFoundSemantics(t *testing.T) {
	repo := repository.NewMemoryProductRepository(testLogger())
	var nf *domain.NotFoundError

	if _, err := repo.GetByID(1); !errors.As(err, &nf) {
		t.Fatalf("get: expected NotFoundError, got %v", err)
	}
	if _, err := repo.Update(&domain.Product{ID: 1, Name: "Ghost", Price: decimal.RequireFromString("1")}); !errors.As(err, &nf) {
		t.Fatalf("update: expected NotFoundError, got %v", err)
	}
	if err := repo.Delete(1); !errors.As(err, &nf) {
		t.Fatalf("delete: expected NotFoundError, got %v", err)
	}
}

func TestMemoryRepo_SortKeys(t *testing.T) {
	repo := repository.NewMemoryProductRepository(testLogger())

	create(t, repo, "Product B", "200", strPtr("beta"))
	create(t, repo, "Product A", "100", strPtr("alpha"))
	create(t, repo, "Product C", "300", nil)

	cases := []struct {
		name      string
		req       domain.PageRequest
		wantNames []string
	}{
		{
			"name ascending",
			domain.PageRequest{Size: 20, SortKey: "name", Direction: domain.SortAsc},
			[]string{"Product A", "Product B", "Product C"},
		},
		{
			"price descending",
			domain.PageRequest{Size: 20, SortKey: "price", Direction: domain.SortDesc},
			[]string{"Product C", "Product B", "Product A"},
		},
		{
			"description ascending sorts missing first",
			domain.PageRequest{Size: 20, SortKey: "description", Direction: domain.SortAsc},
			[]string{"Product C", "Product A", "Product B"},
		},
		{
			"createdAt ascending follows insertion order",
			domain.PageRequest{Size: 20, SortKey: "createdAt", Direction: domain.SortAsc},
			[]string{"Product B", "Product A", "Product C"},
		},
		{
			"id descending",
			domain.PageRequest{Size: 20, SortKey: "id", Direction: domain.SortDesc},
			[]string{"Product C", "Product A", "Product B"},
		},
		{
			"natural order is insertion order",
			domain.PageRequest{Size: 20, Direction: domain.SortAsc},
			[]string{"Product B", "Product A", "Product C"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			content, total, err := repo.List(tc.req)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if total != 3 {
				t.Fatalf("expected total 3, got %d", total)
			}
			for i, want := range tc.wantNames {
				if content[i].Name != want {
					t.Fatalf("position %d: expected %q, got %q", i, want, content[i].Name)
				}
			}
		})
	}
}

func TestMemoryRepo_ConcurrentCreates(t *testing.T) {
	repo := repository.NewMemoryProductRepository(testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(&domain.Product{Name: "Product", Price: decimal.RequireFromString("10")})
		}()
	}
	wg.Wait()

	_, total, err := repo.List(domain.PageRequest{Size: 50, Direction: domain.SortAsc})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 20 {
		t.Fatalf("expected 20 products, got %d", total)
	}
}
