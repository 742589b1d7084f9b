package controller

import (
	"context"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/gateway"
	"catalogadmin/pkg/errors"
)

// Distributors drives the application review screen.
type Distributors struct {
	screenState
	gw *gateway.Client

	applications  []entity.DistributorApplication
	pendingDelete string
}

func NewDistributors(parent context.Context, gw *gateway.Client) *Distributors {
	return &Distributors{screenState: newScreenState(parent), gw: gw}
}

func (c *Distributors) Load() error {
	applications, err := c.gw.Distributors.GetAll(c.scope.Context())

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.fail(err)
		return err
	}
	c.applications = applications
	c.ready()
	return nil
}

func (c *Distributors) List() []entity.DistributorApplication {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applications
}

// SetStatus approves or rejects an application optimistically, rolling back
// on a rejected update.
func (c *Distributors) SetStatus(id string, status entity.ApplicationStatus) error {
	if !status.Valid() {
		return errors.BadRequest("Invalid application status", nil)
	}

	c.mu.Lock()
	idx := -1
	for i := range c.applications {
		if c.applications[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return errors.NotFound("Application", nil)
	}
	previous := c.applications[idx].Status
	c.applications[idx].Status = status
	c.mu.Unlock()

	if err := c.gw.Distributors.UpdateStatus(c.scope.Context(), id, status); err != nil {
		c.mu.Lock()
		for i := range c.applications {
			if c.applications[i].ID == id {
				c.applications[i].Status = previous
				break
			}
		}
		c.banner(err)
		c.mu.Unlock()
		return err
	}
	return nil
}

func (c *Distributors) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

func (c *Distributors) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}

func (c *Distributors) ConfirmDelete() error {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	c.mu.Unlock()
	if id == "" {
		return errors.BadRequest("No application selected for deletion", nil)
	}

	if err := c.gw.Distributors.Delete(c.scope.Context(), id); err != nil {
		c.mu.Lock()
		c.banner(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.applications {
		if c.applications[i].ID == id {
			c.applications = append(c.applications[:i], c.applications[i+1:]...)
			break
		}
	}
	return nil
}
