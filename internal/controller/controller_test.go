package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogadmin/internal/auth"
	"catalogadmin/internal/draft"
	"catalogadmin/internal/gateway"
	"catalogadmin/internal/upload"
)

func newTestGateway(t *testing.T, setup func(e *echo.Echo)) *gateway.Client {
	t.Helper()
	e := echo.New()
	setup(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return gateway.New(srv.URL, 5*time.Second, auth.NewMemoryStore("tok"))
}

func productList(items ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"data": items}
}

func TestUniqueValues(t *testing.T) {
	type row struct{ cat string }
	rows := []row{{"Cables"}, {"Sensors"}, {""}, {"Cables"}, {"Actuators"}}
	got := UniqueValues(rows, func(r row) string { return r.cat })
	assert.Equal(t, []string{"Actuators", "Cables", "Sensors"}, got)
}

func TestProductsLoadAndTaxonomy(t *testing.T) {
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.GET("/admin/products", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, productList(
				map[string]interface{}{"id": "p1", "category": "Sensors", "subcategory": "Thermal"},
				map[string]interface{}{"id": "p2", "category": "Cables", "subcategory": ""},
				map[string]interface{}{"id": "p3", "category": "Sensors", "subcategory": "Optical"},
			))
		})
	})

	c := NewProducts(context.Background(), gw)
	defer c.Close()
	require.NoError(t, c.Load())

	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, []string{"Cables", "Sensors"}, c.Categories())
	assert.Equal(t, []string{"Optical", "Thermal"}, c.Subcategories("Sensors"))
	assert.Empty(t, c.Subcategories("Cables"))
}

func TestProductsOptimisticStatusRollsBack(t *testing.T) {
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.GET("/admin/products", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, productList(
				map[string]interface{}{"id": "p1", "status": "active"},
			))
		})
		e.PATCH("/admin/products/:id/status", func(ec echo.Context) error {
			return ec.JSON(http.StatusBadRequest, map[string]string{"error": "status locked"})
		})
	})

	c := NewProducts(context.Background(), gw)
	defer c.Close()
	require.NoError(t, c.Load())

	err := c.SetStatus("p1", "inactive")
	require.Error(t, err)
	assert.Equal(t, "active", c.List()[0].Status, "rejected update must roll back")
	assert.Equal(t, "status locked", c.Message())
	assert.Equal(t, PhaseReady, c.Phase(), "action failure stays a banner, not a page error")
}

func TestProductsDeleteFailureKeepsScreenReady(t *testing.T) {
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.GET("/admin/products", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, productList(map[string]interface{}{"id": "p1"}))
		})
		e.DELETE("/admin/products/:id", func(ec echo.Context) error {
			return ec.JSON(http.StatusInternalServerError, map[string]string{"error": "boom"})
		})
	})

	c := NewProducts(context.Background(), gw)
	defer c.Close()
	require.NoError(t, c.Load())

	c.RequestDelete("p1")
	require.Error(t, c.ConfirmDelete())
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, "boom", c.Message())
	assert.Len(t, c.List(), 1, "failed delete keeps the row")
}

func TestProductsOptimisticStatusSticks(t *testing.T) {
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.GET("/admin/products", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, productList(
				map[string]interface{}{"id": "p1", "status": "active"},
			))
		})
		e.PATCH("/admin/products/:id/status", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, map[string]interface{}{"success": true, "data": map[string]string{}})
		})
	})

	c := NewProducts(context.Background(), gw)
	defer c.Close()
	require.NoError(t, c.Load())

	require.NoError(t, c.SetStatus("p1", "inactive"))
	assert.Equal(t, "inactive", c.List()[0].Status)
}

func TestProductsDeleteNeedsConfirmation(t *testing.T) {
	deleted := false
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.GET("/admin/products", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, productList(map[string]interface{}{"id": "p1"}))
		})
		e.DELETE("/admin/products/:id", func(ec echo.Context) error {
			deleted = true
			return ec.JSON(http.StatusOK, map[string]interface{}{"success": true, "data": map[string]string{}})
		})
	})

	c := NewProducts(context.Background(), gw)
	defer c.Close()
	require.NoError(t, c.Load())

	c.RequestDelete("p1")
	c.CancelDelete()
	assert.Error(t, c.ConfirmDelete(), "cancelled confirmation must not delete")
	assert.False(t, deleted)
	require.Len(t, c.List(), 1)

	c.RequestDelete("p1")
	require.NoError(t, c.ConfirmDelete())
	assert.True(t, deleted)
	assert.Empty(t, c.List())
}

func TestClosedScopeAbortsLoad(t *testing.T) {
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.GET("/admin/products", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, productList())
		})
	})

	c := NewProducts(context.Background(), gw)
	c.Close()
	assert.Error(t, c.Load())
	assert.NotEqual(t, PhaseReady, c.Phase())
}

func TestDashboardPartialFailureReportsZero(t *testing.T) {
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.GET("/admin/products/count", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, map[string]interface{}{"count": 12})
		})
		e.GET("/admin/addresses/count", func(ec echo.Context) error {
			return ec.JSON(http.StatusInternalServerError, map[string]string{"error": "boom"})
		})
		e.GET("/admin/footer-count", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, map[string]interface{}{"count": 1})
		})
		e.GET("/admin/distributor/count", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, map[string]interface{}{"count": 3})
		})
		e.GET("/admin/enquiries/count", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, map[string]interface{}{"count": 5})
		})
		e.GET("/admin/products/recent", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, productList(map[string]interface{}{"id": "p1"}))
		})
		e.GET("/admin/enquiries/recent", func(ec echo.Context) error {
			return ec.JSON(http.StatusInternalServerError, map[string]string{"error": "boom"})
		})
		e.GET("/admin/distributor/recent", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, productList())
		})
	})

	d := NewDashboard(context.Background(), gw)
	defer d.Close()
	require.NoError(t, d.Load())

	counts := d.Counts()
	assert.Equal(t, int64(12), counts.Products)
	assert.Equal(t, int64(0), counts.Addresses, "failed count reports zero")
	assert.Equal(t, int64(1), counts.Footers)
	assert.Equal(t, int64(3), counts.Distributors)
	assert.Equal(t, int64(5), counts.Enquiries)
	assert.Len(t, d.RecentProducts(), 1)
	assert.Empty(t, d.RecentEnquiries())
	assert.Equal(t, PhaseReady, d.Phase())
}

func TestProductFormSubmitBlockedByValidation(t *testing.T) {
	hit := false
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.POST("/admin/products", func(ec echo.Context) error {
			hit = true
			return ec.JSON(http.StatusOK, map[string]interface{}{"productId": "p1"})
		})
	})

	f := NewProductForm(context.Background(), gw)
	defer f.Close()

	_, err := f.Submit()
	require.Error(t, err)
	assert.False(t, hit, "invalid draft must not reach the network")
	assert.Equal(t, "Product name is required", f.Draft.Errors["name"])
	assert.Equal(t, "name", f.FocusField)
	assert.Equal(t, "basic", f.FocusTab)
}

func TestProductFormSubmitReleasesPreviews(t *testing.T) {
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.POST("/admin/products", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, map[string]interface{}{"success": true, "productId": "p-created"})
		})
	})

	f := NewProductForm(context.Background(), gw)
	defer f.Close()
	f.Draft.SetName("Widget")
	f.Draft.SetPrice("5.50")
	f.Draft.SetCategory("Sensors")
	f.Draft.SetSpec(0, "spec")
	f.Draft.SetHighlight(0, "highlight")
	f.Draft.AddImages([]*upload.File{{Name: "a.png", ContentType: "image/png", Data: []byte("x")}})
	require.Equal(t, 1, f.Draft.Previews().Alive())

	p, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "p-created", p.ID)
	assert.Zero(t, f.Draft.Previews().Alive())
}

func TestProductFormServerRejectionSetsBanner(t *testing.T) {
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.POST("/admin/products", func(ec echo.Context) error {
			return ec.JSON(http.StatusBadRequest, map[string]string{"error": "duplicate name"})
		})
	})

	f := NewProductForm(context.Background(), gw)
	defer f.Close()
	f.Draft.SetName("Widget")
	f.Draft.SetPrice("5.50")
	f.Draft.SetCategory("Sensors")
	f.Draft.SetSpec(0, "spec")
	f.Draft.SetHighlight(0, "highlight")
	f.Draft.AddImages([]*upload.File{{Name: "a.png", ContentType: "image/png", Data: []byte("x")}})

	_, err := f.Submit()
	require.Error(t, err)
	assert.Equal(t, "duplicate name", f.Draft.ServerError)
	assert.False(t, f.Saving())
	assert.Equal(t, 1, f.Draft.Previews().Alive(), "failed submit keeps the draft intact")
}

func TestAddressesSaveValidatesFirst(t *testing.T) {
	hit := false
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.POST("/admin/addresses", func(ec echo.Context) error {
			hit = true
			return ec.JSON(http.StatusOK, map[string]interface{}{"data": map[string]string{"id": "a1"}})
		})
	})

	c := NewAddresses(context.Background(), gw)
	defer c.Close()

	errs, err := c.Save("", draft.AddressRecord{})
	require.NoError(t, err)
	assert.NotEmpty(t, errs)
	assert.False(t, hit)
}

func TestEnquiriesStatusRollback(t *testing.T) {
	gw := newTestGateway(t, func(e *echo.Echo) {
		e.GET("/admin/enquiries", func(ec echo.Context) error {
			return ec.JSON(http.StatusOK, productList(
				map[string]interface{}{"id": "e1", "status": "New"},
			))
		})
		e.PATCH("/admin/enquiries/:id/status", func(ec echo.Context) error {
			return ec.JSON(http.StatusForbidden, map[string]string{"error": "read only"})
		})
	})

	c := NewEnquiries(context.Background(), gw)
	defer c.Close()
	require.NoError(t, c.Load())

	err := c.SetStatus("e1", "Completed")
	require.Error(t, err)
	assert.Equal(t, "New", string(c.List()[0].Status))
	assert.Equal(t, PhaseReady, c.Phase())
}

func TestHomeRejectsUnknownSection(t *testing.T) {
	gw := newTestGateway(t, func(e *echo.Echo) {})
	_, err := NewHome(context.Background(), gw, "sidebar")
	assert.Error(t, err)
}
