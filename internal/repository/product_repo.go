package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"product_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type sqlProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

// NewSQLProductRepository returns a ProductRepository backed by db. The SQL
// uses $N placeholders and RETURNING, which both postgres and sqlite accept,
// so tests can run the same repository against an in-memory database.
func NewSQLProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &sqlProductRepository{
		db:  db,
		log: logger,
	}
}

const (
	sqlInsertProduct = `
        INSERT INTO products (name, description, price, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	sqlGetProductByID = `
        SELECT id, name, description, price, created_at
        FROM products
        WHERE id = $1`

	sqlUpdateProduct = `
        UPDATE products
        SET name = $1, description = $2, price = $3
        WHERE id = $4`

	sqlDeleteProduct = `
        DELETE FROM products WHERE id = $1`

	sqlCountProducts = `
        SELECT COUNT(*) FROM products`
)

func (r *sqlProductRepository) Create(product *domain.Product) (*domain.Product, error) {
	// The creation timestamp is assigned here, in UTC, rather than by the
	// database so the statement stays portable across engines.
	now := time.Now().UTC()
	err := r.db.QueryRow(sqlInsertProduct,
		product.Name, nullableString(product.Description), product.Price, now,
	).Scan(&product.ID)
	if err != nil {
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	product.CreatedAt = &now

	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *sqlProductRepository) GetByID(id int64) (*domain.Product, error) {
	product := &domain.Product{}
	var description sql.NullString
	var createdAt time.Time

	err := r.db.QueryRow(sqlGetProductByID, id).Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, &domain.NotFoundError{ID: id}
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}

	if description.Valid {
		product.Description = &description.String
	}
	product.CreatedAt = &createdAt
	return product, nil
}

func (r *sqlProductRepository) List(req domain.PageRequest) ([]domain.Product, int64, error) {
	var total int64
	if err := r.db.QueryRow(sqlCountProducts).Scan(&total); err != nil {
		r.log.Errorf("Failed to count products: %v", err)
		return nil, 0, fmt.Errorf("could not count products: %w", err)
	}

	direction := req.Direction
	if direction != domain.SortDesc {
		direction = domain.SortAsc
	}

	// Natural order falls back to the primary key so paging stays stable.
	orderBy := "id"
	nulls := ""
	if req.SortKey != "" {
		col, ok := domain.SortColumn(req.SortKey)
		if !ok {
			return nil, 0, &domain.SortFieldError{Field: req.SortKey}
		}
		orderBy = col
		if col == "description" {
			// A missing description sorts as the smallest value, the same
			// contract the in-memory backend honors.
			if direction == domain.SortAsc {
				nulls = " NULLS FIRST"
			} else {
				nulls = " NULLS LAST"
			}
		}
	}
	query := fmt.Sprintf(`
        SELECT id, name, description, price, created_at
        FROM products
        ORDER BY %s %s%s, id ASC
        LIMIT $1 OFFSET $2`, orderBy, direction, nulls)

	rows, err := r.db.Query(query, req.Size, req.Offset())
	if err != nil {
		r.log.Errorf("Failed to list products (page %d, size %d): %v", req.Page, req.Size, err)
		return nil, 0, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		var description sql.NullString
		var createdAt time.Time
		if err := rows.Scan(&product.ID, &product.Name, &description, &product.Price, &createdAt); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, 0, fmt.Errorf("error scanning product data: %w", err)
		}
		if description.Valid {
			product.Description = &description.String
		}
		product.CreatedAt = &createdAt
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	r.log.Infof("Retrieved %d of %d products (page: %d, size: %d)", len(products), total, req.Page, req.Size)
	return products, total, nil
}

func (r *sqlProductRepository) Update(product *domain.Product) (*domain.Product, error) {
	result, err := r.db.Exec(sqlUpdateProduct,
		product.Name, nullableString(product.Description), product.Price, product.ID)
	if err != nil {
		r.log.Errorf("Failed to update product ID %d: %v", product.ID, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating product ID %d: %v", product.ID, err)
		return nil, fmt.Errorf("could not confirm product update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Product with ID %d not found for update", product.ID)
		return nil, &domain.NotFoundError{ID: product.ID}
	}

	r.log.Infof("Product updated successfully with ID: %d", product.ID)
	return r.GetByID(product.ID)
}

func (r *sqlProductRepository) Delete(id int64) error {
	result, err := r.db.Exec(sqlDeleteProduct, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return &domain.NotFoundError{ID: id}
	}

	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
