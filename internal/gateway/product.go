package gateway

import (
	"context"
	"net/http"
	"net/url"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/draft"
	"catalogadmin/pkg/errors"
)

// ProductService wraps the /admin/products endpoints. Create and Update are
// multipart because they carry image and PDF attachments.
type ProductService struct {
	client *Client
}

func (s *ProductService) Create(ctx context.Context, form *draft.Form) (*entity.Product, error) {
	env, err := s.client.do(ctx, request{
		method:      http.MethodPost,
		path:        "/admin/products",
		body:        form.Body.Bytes(),
		contentType: form.ContentType,
		authed:      true,
		fallback:    "Failed to create product",
	})
	if err != nil {
		return nil, err
	}

	product := &entity.Product{}
	if raw := env.payload(); raw != nil {
		if err := jsonCodec.Unmarshal(raw, product); err != nil {
			return nil, errors.InvalidResponse("Failed to decode created product", err)
		}
		if product.ID == "" {
			product.ID = env.ProductID
		}
		return product, nil
	}
	// Legacy backends answer with a bare productId.
	if env.ProductID != "" {
		product.ID = env.ProductID
		return product, nil
	}
	return nil, errors.InvalidResponse("Response carried no data", nil)
}

func (s *ProductService) GetAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := s.client.getJSON(ctx, "/admin/products", true, "Failed to fetch products", &products)
	return products, err
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product := &entity.Product{}
	err := s.client.getJSON(ctx, "/admin/products/"+url.PathEscape(id), true, "Failed to fetch product", product)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, form *draft.Form) (*entity.Product, error) {
	env, err := s.client.do(ctx, request{
		method:      http.MethodPatch,
		path:        "/admin/products/" + url.PathEscape(id),
		body:        form.Body.Bytes(),
		contentType: form.ContentType,
		authed:      true,
		fallback:    "Failed to update product",
	})
	if err != nil {
		return nil, err
	}
	product := &entity.Product{}
	if raw := env.payload(); raw != nil {
		if err := jsonCodec.Unmarshal(raw, product); err != nil {
			return nil, errors.InvalidResponse("Failed to decode updated product", err)
		}
	}
	if product.ID == "" {
		product.ID = id
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	_, err := s.client.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/admin/products/" + url.PathEscape(id),
		authed:   true,
		fallback: "Failed to delete product",
	})
	return err
}

func (s *ProductService) UpdateStatus(ctx context.Context, id, status string) error {
	if status != entity.ProductStatusActive && status != entity.ProductStatusInactive {
		return errors.BadRequest("Invalid product status", nil)
	}
	body, err := marshalJSON(map[string]string{"status": status})
	if err != nil {
		return err
	}
	_, err = s.client.do(ctx, request{
		method:   http.MethodPatch,
		path:     "/admin/products/" + url.PathEscape(id) + "/status",
		body:     body,
		authed:   true,
		fallback: "Failed to update product status",
	})
	return err
}

func (s *ProductService) Count(ctx context.Context) (int64, error) {
	return s.client.count(ctx, "/admin/products/count", "Failed to fetch product count")
}

func (s *ProductService) Recent(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := s.client.getJSON(ctx, "/admin/products/recent", true, "Failed to fetch recent products", &products)
	return products, err
}

// DeleteCategory prunes a category name across the catalog.
func (s *ProductService) DeleteCategory(ctx context.Context, category string) error {
	_, err := s.client.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/admin/products/category/" + url.PathEscape(category),
		authed:   true,
		fallback: "Failed to delete category",
	})
	return err
}

func (s *ProductService) DeleteSubcategory(ctx context.Context, subcategory string) error {
	_, err := s.client.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/admin/products/subcategory/" + url.PathEscape(subcategory),
		authed:   true,
		fallback: "Failed to delete subcategory",
	})
	return err
}
