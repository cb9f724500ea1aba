package usecase

import (
	"product_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductService interface {
	Create(input domain.ProductInput) (*domain.Product, error)
	GetByID(id int64) (*domain.Product, error)
	ListPage(req domain.PageRequest) (*domain.Page, error)
	Update(id int64, input domain.ProductInput) (*domain.Product, error)
	Delete(id int64) error
}

type productService struct {
	repo domain.ProductRepository
	log  *logrus.Logger
}

func NewProductService(repo domain.ProductRepository, logger *logrus.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  logger,
	}
}

// Create validates the input and delegates to the repository, which assigns
// the id and creation timestamp. On any validation failure the repository is
// never contacted.
func (s *productService) Create(input domain.ProductInput) (*domain.Product, error) {
	price, present, err := domain.ParsePrice(input.Price.Raw)
	if err != nil {
		s.log.Warnf("Use Case: Malformed price %q on create: %v", input.Price.Raw, err)
		return nil, err
	}
	if fieldErrors := domain.Validate(input, price, present); len(fieldErrors) > 0 {
		s.log.Warnf("Use Case: Validation failed on create: %v", fieldErrors)
		return nil, &domain.ValidationError{Fields: fieldErrors}
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
	}
	created, err := s.repo.Create(product)
	if err != nil {
		s.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	s.log.Infof("Use Case: Product '%s' created with ID %d", created.Name, created.ID)
	return created, nil
}

func (s *productService) GetByID(id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		s.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return product, nil
}

// ListPage returns the requested page together with the total element and
// page counts. A page beyond the last one yields an empty content slice with
// the same totals.
func (s *productService) ListPage(req domain.PageRequest) (*domain.Page, error) {
	content, total, err := s.repo.List(req)
	if err != nil {
		s.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	s.log.Infof("Use Case: Retrieved %d of %d products (page: %d, size: %d)",
		len(content), total, req.Page, req.Size)
	return &domain.Page{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		PageNumber:    req.Page,
		PageSize:      req.Size,
	}, nil
}

// Update overwrites name, description and price of an existing product,
// leaving its id and creation timestamp untouched. Existence is checked
// before the new input is validated, so a missing id short-circuits with
// NotFound.
func (s *productService) Update(id int64, input domain.ProductInput) (*domain.Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		s.log.Warnf("Use Case: Product ID %d not found for update: %v", id, err)
		return nil, err
	}

	price, present, err := domain.ParsePrice(input.Price.Raw)
	if err != nil {
		s.log.Warnf("Use Case: Malformed price %q on update ID %d: %v", input.Price.Raw, id, err)
		return nil, err
	}
	if fieldErrors := domain.Validate(input, price, present); len(fieldErrors) > 0 {
		s.log.Warnf("Use Case: Validation failed on update ID %d: %v", id, fieldErrors)
		return nil, &domain.ValidationError{Fields: fieldErrors}
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = price

	updated, err := s.repo.Update(existing)
	if err != nil {
		s.log.Errorf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, err
	}

	s.log.Infof("Use Case: Product updated for ID %d", updated.ID)
	return updated, nil
}

// Delete removes a product permanently. Existence is resolved first, so a
// missing id yields NotFound.
func (s *productService) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		s.log.Warnf("Use Case: Product ID %d not found for delete: %v", id, err)
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.log.Errorf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}
	s.log.Infof("Use Case: Product deleted for ID %d", id)
	return nil
}
