package controller

import (
	"context"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/gateway"
	"catalogadmin/pkg/errors"
)

// Enquiries drives the enquiry inbox: list, status transitions and delete.
type Enquiries struct {
	screenState
	gw *gateway.Client

	enquiries     []entity.Enquiry
	pendingDelete string
}

func NewEnquiries(parent context.Context, gw *gateway.Client) *Enquiries {
	return &Enquiries{screenState: newScreenState(parent), gw: gw}
}

func (c *Enquiries) Load() error {
	enquiries, err := c.gw.Enquiries.GetAll(c.scope.Context())

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.fail(err)
		return err
	}
	c.enquiries = enquiries
	c.ready()
	return nil
}

func (c *Enquiries) List() []entity.Enquiry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enquiries
}

// SetStatus moves an enquiry through the triage states optimistically,
// rolling back when the server rejects the transition.
func (c *Enquiries) SetStatus(id string, status entity.EnquiryStatus) error {
	if !status.Valid() {
		return errors.BadRequest("Invalid enquiry status", nil)
	}

	c.mu.Lock()
	idx := -1
	for i := range c.enquiries {
		if c.enquiries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return errors.NotFound("Enquiry", nil)
	}
	previous := c.enquiries[idx].Status
	c.enquiries[idx].Status = status
	c.mu.Unlock()

	if err := c.gw.Enquiries.UpdateStatus(c.scope.Context(), id, status); err != nil {
		c.mu.Lock()
		for i := range c.enquiries {
			if c.enquiries[i].ID == id {
				c.enquiries[i].Status = previous
				break
			}
		}
		c.banner(err)
		c.mu.Unlock()
		return err
	}
	return nil
}

func (c *Enquiries) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

func (c *Enquiries) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}

func (c *Enquiries) ConfirmDelete() error {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	c.mu.Unlock()
	if id == "" {
		return errors.BadRequest("No enquiry selected for deletion", nil)
	}

	if err := c.gw.Enquiries.Delete(c.scope.Context(), id); err != nil {
		c.mu.Lock()
		c.banner(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.enquiries {
		if c.enquiries[i].ID == id {
			c.enquiries = append(c.enquiries[:i], c.enquiries[i+1:]...)
			break
		}
	}
	return nil
}
