package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopcrawl/shopcrawl"
)

// Compile-time interface verification.
var _ shopcrawl.ProductService = (*ProductService)(nil)

// ProductService implements shopcrawl.ProductService using SQLite.
// Variants are stored in their own table so a product row stays small.
type ProductService struct {
	db *DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProduct stores a product and its variants in one transaction.
func (s *ProductService) CreateProduct(ctx context.Context, product *shopcrawl.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	if product.FetchedAt.IsZero() {
		product.FetchedAt = time.Now().UTC()
	}
	if product.Availability == "" {
		product.Availability = shopcrawl.InStock
	}

	tags, err := marshalJSON(product.Tags, "[]")
	if err != nil {
		return err
	}
	images, err := marshalJSON(product.Images, "[]")
	if err != nil {
		return err
	}
	reviews, err := marshalJSON(product.Reviews, "[]")
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rowID := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO products (id, product_id, gid, vendor, product_type, price_cents, name,
			description, availability, tags, images, weight, dimensions, tax_info, reviews,
			url, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rowID, product.ID, product.GID, product.Vendor, product.Type, product.PriceCents,
		product.Name, product.Description, string(product.Availability), tags, images,
		product.Weight, product.Dimensions, product.TaxInfo, reviews,
		product.URL, product.ContentHash, product.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, v := range product.Variants {
		options, err := marshalJSON(v.Options, "{}")
		if err != nil {
			return err
		}
		availability := v.Availability
		if availability == "" {
			availability = shopcrawl.InStock
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO variants (id, product_row_id, variant_id, name, sku, price_cents,
				availability, image, options, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), rowID, v.ID, v.Name, v.SKU, v.PriceCents,
			string(availability), v.Image, options, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindProductByURL retrieves the most recently fetched product for a URL.
func (s *ProductService) FindProductByURL(ctx context.Context, url string) (*shopcrawl.Product, error) {
	url = strings.TrimSpace(url)
	products, err := s.findProducts(ctx, shopcrawl.ProductFilter{URL: &url, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, shopcrawl.Errorf(shopcrawl.ENOTFOUND, "product not found")
	}
	return products[0], nil
}

// FindProducts retrieves products matching the filter, most recently
// fetched first.
func (s *ProductService) FindProducts(ctx context.Context, filter shopcrawl.ProductFilter) ([]*shopcrawl.Product, error) {
	return s.findProducts(ctx, filter)
}

func (s *ProductService) findProducts(ctx context.Context, filter shopcrawl.ProductFilter) ([]*shopcrawl.Product, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, product_id, gid, vendor, product_type, price_cents, name,
		description, availability, tags, images, weight, dimensions, tax_info, reviews,
		url, content_hash, fetched_at FROM products WHERE 1=1`)

	if filter.Vendor != nil {
		query.WriteString(" AND vendor = ?")
		args = append(args, *filter.Vendor)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*shopcrawl.Product
	var rowIDs []string
	for rows.Next() {
		product, rowID, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
		rowIDs = append(rowIDs, rowID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, rowID := range rowIDs {
		variants, err := s.findVariants(ctx, rowID)
		if err != nil {
			return nil, err
		}
		products[i].Variants = variants
	}

	return products, nil
}

func scanProduct(rows *sql.Rows) (*shopcrawl.Product, string, error) {
	var product shopcrawl.Product
	var rowID, availability, tags, images, reviews, fetchedAt string

	if err := rows.Scan(&rowID, &product.ID, &product.GID, &product.Vendor, &product.Type,
		&product.PriceCents, &product.Name, &product.Description, &availability,
		&tags, &images, &product.Weight, &product.Dimensions, &product.TaxInfo, &reviews,
		&product.URL, &product.ContentHash, &fetchedAt); err != nil {
		return nil, "", err
	}

	product.Availability = shopcrawl.Availability(availability)
	product.Tags = []string{}
	product.Images = []string{}
	product.Reviews = []shopcrawl.Review{}
	if err := unmarshalJSON(tags, "tags", &product.Tags); err != nil {
		return nil, "", err
	}
	if err := unmarshalJSON(images, "images", &product.Images); err != nil {
		return nil, "", err
	}
	if err := unmarshalJSON(reviews, "reviews", &product.Reviews); err != nil {
		return nil, "", err
	}

	var err error
	product.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, "", err
	}

	return &product, rowID, nil
}

func (s *ProductService) findVariants(ctx context.Context, productRowID string) ([]shopcrawl.Variant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT variant_id, name, sku, price_cents, availability, image, options
		FROM variants
		WHERE product_row_id = ?
		ORDER BY position ASC
	`, productRowID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variants := []shopcrawl.Variant{}
	for rows.Next() {
		var v shopcrawl.Variant
		var availability, options string
		if err := rows.Scan(&v.ID, &v.Name, &v.SKU, &v.PriceCents, &availability,
			&v.Image, &options); err != nil {
			return nil, err
		}
		v.Availability = shopcrawl.Availability(availability)
		v.Options = map[string]string{}
		if err := unmarshalJSON(options, "options", &v.Options); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}

	return variants, rows.Err()
}
