package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"product_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// memoryProductRepository is a thread-safe in-memory ProductRepository used
// for development without a database and for tests.
type memoryProductRepository struct {
	mu       sync.RWMutex
	nextID   int64
	products map[int64]domain.Product
	log      *logrus.Logger
}

func NewMemoryProductRepository(logger *logrus.Logger) domain.ProductRepository {
	return &memoryProductRepository{
		products: make(map[int64]domain.Product),
		log:      logger,
	}
}

var _ domain.ProductRepository = (*memoryProductRepository)(nil)

func (r *memoryProductRepository) Create(product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now().UTC()
	product.ID = r.nextID
	product.CreatedAt = &now
	r.products[product.ID] = *product

	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *memoryProductRepository) GetByID(id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		r.log.Warnf("Product with ID %d not found", id)
		return nil, &domain.NotFoundError{ID: id}
	}
	return &product, nil
}

func (r *memoryProductRepository) List(req domain.PageRequest) ([]domain.Product, int64, error) {
	r.mu.RLock()
	all := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		all = append(all, product)
	}
	r.mu.RUnlock()

	sortProducts(all, req)

	total := int64(len(all))
	start := req.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + req.Size
	if end > len(all) {
		end = len(all)
	}

	r.log.Infof("Retrieved %d of %d products (page: %d, size: %d)", end-start, total, req.Page, req.Size)
	return all[start:end], total, nil
}

func (r *memoryProductRepository) Update(product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		r.log.Warnf("Product with ID %d not found for update", product.ID)
		return nil, &domain.NotFoundError{ID: product.ID}
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	r.products[existing.ID] = existing

	r.log.Infof("Product updated successfully with ID: %d", existing.ID)
	updated := existing
	return &updated, nil
}

func (r *memoryProductRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return &domain.NotFoundError{ID: id}
	}
	delete(r.products, id)

	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

// sortProducts orders products the same way the SQL repository does: by the
// requested key with id as tie-breaker, or by id for natural order.
func sortProducts(products []domain.Product, req domain.PageRequest) {
	desc := req.Direction == domain.SortDesc
	sort.SliceStable(products, func(i, j int) bool {
		cmp := compareProducts(products[i], products[j], req.SortKey)
		if cmp == 0 {
			return products[i].ID < products[j].ID
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareProducts(a, b domain.Product, key string) int {
	switch key {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "description":
		// A missing description sorts before any present one, matching the
		// SQL backend's NULLS FIRST ordering.
		switch {
		case a.Description == nil && b.Description == nil:
			return 0
		case a.Description == nil:
			return -1
		case b.Description == nil:
			return 1
		}
		return strings.Compare(*a.Description, *b.Description)
	case "price":
		return a.Price.Cmp(b.Price)
	case "createdAt":
		if a.CreatedAt.Equal(*b.CreatedAt) {
			return 0
		}
		if a.CreatedAt.Before(*b.CreatedAt) {
			return -1
		}
		return 1
	default:
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	}
}
