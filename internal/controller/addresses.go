package controller

import (
	"context"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/draft"
	"catalogadmin/internal/gateway"
	"catalogadmin/pkg/errors"
)

// Addresses drives the address management screen. Records are edited in a
// modal as flat drafts; validation happens client-side before any request.
type Addresses struct {
	screenState
	gw *gateway.Client

	addresses     []entity.Address
	pendingDelete string
}

func NewAddresses(parent context.Context, gw *gateway.Client) *Addresses {
	return &Addresses{screenState: newScreenState(parent), gw: gw}
}

func (c *Addresses) Load() error {
	addresses, err := c.gw.Addresses.GetAll(c.scope.Context())

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.fail(err)
		return err
	}
	c.addresses = addresses
	c.ready()
	return nil
}

func (c *Addresses) List() []entity.Address {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addresses
}

// Save creates or updates an address. A non-empty id means update. The
// returned map carries validation errors; the error is the server-side
// failure, if any.
func (c *Addresses) Save(id string, record draft.AddressRecord) (map[string]string, error) {
	if errs := draft.CheckRecord(record); len(errs) > 0 {
		return errs, nil
	}

	var (
		saved *entity.Address
		err   error
	)
	if id == "" {
		saved, err = c.gw.Addresses.Create(c.scope.Context(), record)
	} else {
		saved, err = c.gw.Addresses.Update(c.scope.Context(), id, record)
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if id == "" {
		c.addresses = append(c.addresses, *saved)
		return nil, nil
	}
	for i := range c.addresses {
		if c.addresses[i].ID == id {
			c.addresses[i] = *saved
			break
		}
	}
	return nil, nil
}

func (c *Addresses) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

func (c *Addresses) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}

func (c *Addresses) ConfirmDelete() error {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	c.mu.Unlock()
	if id == "" {
		return errors.BadRequest("No address selected for deletion", nil)
	}

	if err := c.gw.Addresses.Delete(c.scope.Context(), id); err != nil {
		c.mu.Lock()
		c.banner(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.addresses {
		if c.addresses[i].ID == id {
			c.addresses = append(c.addresses[:i], c.addresses[i+1:]...)
			break
		}
	}
	return nil
}

// SetStatus toggles active/inactive optimistically with rollback on a
// rejected update.
func (c *Addresses) SetStatus(id, status string) error {
	if status != entity.StatusActive && status != entity.StatusInactive {
		return errors.BadRequest("Invalid address status", nil)
	}

	c.mu.Lock()
	idx := -1
	for i := range c.addresses {
		if c.addresses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return errors.NotFound("Address", nil)
	}
	previous := c.addresses[idx].Status
	c.addresses[idx].Status = status
	c.mu.Unlock()

	if err := c.gw.Addresses.UpdateStatus(c.scope.Context(), id, status); err != nil {
		c.mu.Lock()
		for i := range c.addresses {
			if c.addresses[i].ID == id {
				c.addresses[i].Status = previous
				break
			}
		}
		c.banner(err)
		c.mu.Unlock()
		return err
	}
	return nil
}
