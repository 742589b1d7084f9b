package controller

import (
	"context"

	"golang.org/x/sync/errgroup"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/gateway"
	"catalogadmin/pkg/logger"
)

// DashboardCounts is the aggregate row at the top of the dashboard.
type DashboardCounts struct {
	Products     int64
	Addresses    int64
	Footers      int64
	Distributors int64
	Enquiries    int64
}

// Dashboard loads the overview screen: one count per entity plus the recent
// activity feeds. Each fetch is independent and a failed one reports zero
// rather than taking the whole screen down.
type Dashboard struct {
	screenState
	gw *gateway.Client

	counts             DashboardCounts
	recentProducts     []entity.Product
	recentEnquiries    []entity.Enquiry
	recentApplications []entity.DistributorApplication
}

func NewDashboard(parent context.Context, gw *gateway.Client) *Dashboard {
	return &Dashboard{screenState: newScreenState(parent), gw: gw}
}

// Load fans the count and recent fetches out concurrently and waits for all
// of them. Only a dead scope surfaces as an error; per-fetch failures are
// logged and zeroed.
func (d *Dashboard) Load() error {
	g, ctx := errgroup.WithContext(d.scope.Context())

	counts := DashboardCounts{}
	fetchCount := func(dst *int64, name string, fetch func(context.Context) (int64, error)) func() error {
		return func() error {
			n, err := fetch(ctx)
			if err != nil {
				logger.Warn("dashboard %s count failed: %v", name, err)
				return nil
			}
			*dst = n
			return nil
		}
	}
	g.Go(fetchCount(&counts.Products, "product", d.gw.Products.Count))
	g.Go(fetchCount(&counts.Addresses, "address", d.gw.Addresses.Count))
	g.Go(fetchCount(&counts.Footers, "footer", d.gw.Footer.Count))
	g.Go(fetchCount(&counts.Distributors, "distributor", d.gw.Distributors.Count))
	g.Go(fetchCount(&counts.Enquiries, "enquiry", d.gw.Enquiries.Count))

	var (
		products     []entity.Product
		enquiries    []entity.Enquiry
		applications []entity.DistributorApplication
	)
	g.Go(func() error {
		var err error
		if products, err = d.gw.Products.Recent(ctx); err != nil {
			logger.Warn("dashboard recent products failed: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if enquiries, err = d.gw.Enquiries.Recent(ctx); err != nil {
			logger.Warn("dashboard recent enquiries failed: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if applications, err = d.gw.Distributors.Recent(ctx); err != nil {
			logger.Warn("dashboard recent applications failed: %v", err)
		}
		return nil
	})

	_ = g.Wait()
	if err := d.scope.Context().Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.counts = counts
	d.recentProducts = products
	d.recentEnquiries = enquiries
	d.recentApplications = applications
	d.ready()
	return nil
}

func (d *Dashboard) Counts() DashboardCounts {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.counts
}

func (d *Dashboard) RecentProducts() []entity.Product {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.recentProducts
}

func (d *Dashboard) RecentEnquiries() []entity.Enquiry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.recentEnquiries
}

func (d *Dashboard) RecentApplications() []entity.DistributorApplication {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.recentApplications
}
