package controller

import (
	"context"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/gateway"
	"catalogadmin/pkg/errors"
)

// Products drives the product list screen: load, filter sources, delete
// with a confirmation step, and status toggling.
type Products struct {
	screenState
	gw *gateway.Client

	products      []entity.Product
	pendingDelete string
}

func NewProducts(parent context.Context, gw *gateway.Client) *Products {
	return &Products{screenState: newScreenState(parent), gw: gw}
}

func (c *Products) Load() error {
	products, err := c.gw.Products.GetAll(c.scope.Context())

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.fail(err)
		return err
	}
	c.products = products
	c.ready()
	return nil
}

func (c *Products) List() []entity.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products
}

// Categories lists the distinct category names present in the catalog.
func (c *Products) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return UniqueValues(c.products, func(p entity.Product) string { return p.Category })
}

// Subcategories lists the distinct subcategories under one category.
func (c *Products) Subcategories(category string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return UniqueValues(c.products, func(p entity.Product) string {
		if p.Category != category {
			return ""
		}
		return p.Subcategory
	})
}

// RequestDelete arms the confirmation dialog for one product. Nothing is
// deleted until ConfirmDelete.
func (c *Products) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

func (c *Products) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}

func (c *Products) PendingDelete() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingDelete
}

// ConfirmDelete deletes the armed product and drops it from the list.
func (c *Products) ConfirmDelete() error {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	c.mu.Unlock()
	if id == "" {
		return errors.BadRequest("No product selected for deletion", nil)
	}

	if err := c.gw.Products.Delete(c.scope.Context(), id); err != nil {
		c.mu.Lock()
		c.banner(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			break
		}
	}
	return nil
}

// SetStatus flips a product's status optimistically: the list shows the new
// value immediately and rolls back to the value captured beforehand when the
// server rejects the change.
func (c *Products) SetStatus(id, status string) error {
	c.mu.Lock()
	idx := -1
	for i := range c.products {
		if c.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return errors.NotFound("Product", nil)
	}
	previous := c.products[idx].Status
	c.products[idx].Status = status
	c.mu.Unlock()

	if err := c.gw.Products.UpdateStatus(c.scope.Context(), id, status); err != nil {
		c.mu.Lock()
		for i := range c.products {
			if c.products[i].ID == id {
				c.products[i].Status = previous
				break
			}
		}
		c.banner(err)
		c.mu.Unlock()
		return err
	}
	return nil
}

// DeleteCategory removes a category server-side and reloads the list so the
// filter dropdowns stay truthful.
func (c *Products) DeleteCategory(name string) error {
	if err := c.gw.Products.DeleteCategory(c.scope.Context(), name); err != nil {
		c.mu.Lock()
		c.banner(err)
		c.mu.Unlock()
		return err
	}
	return c.Load()
}

func (c *Products) DeleteSubcategory(name string) error {
	if err := c.gw.Products.DeleteSubcategory(c.scope.Context(), name); err != nil {
		c.mu.Lock()
		c.banner(err)
		c.mu.Unlock()
		return err
	}
	return c.Load()
}
