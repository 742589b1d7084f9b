package controller

import (
	"context"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/draft"
	"catalogadmin/internal/gateway"
	"catalogadmin/internal/upload"
	"catalogadmin/pkg/errors"
)

// Home drives one home page media section at a time: carousel, topImages or
// bottomImages.
type Home struct {
	screenState
	gw      *gateway.Client
	section string

	items         []entity.HomeItem
	pendingDelete string
}

func NewHome(parent context.Context, gw *gateway.Client, section string) (*Home, error) {
	if !entity.ValidHomeSection(section) {
		return nil, errors.BadRequest("Unknown home section", nil)
	}
	return &Home{screenState: newScreenState(parent), gw: gw, section: section}, nil
}

func (c *Home) Section() string {
	return c.section
}

func (c *Home) Load() error {
	items, err := c.gw.Home.GetAll(c.scope.Context(), c.section)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.fail(err)
		return err
	}
	c.items = items
	c.ready()
	return nil
}

func (c *Home) List() []entity.HomeItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Save creates or updates an item. A new item must carry an image; an
// update may keep the stored one by passing a nil image.
func (c *Home) Save(id, title, description, link string, image *upload.File) error {
	if id == "" && image == nil {
		return errors.BadRequest("An image is required", nil)
	}
	if image != nil {
		if msg := upload.Check(image, upload.ImageTypes, draft.MaxFileSizeMB); msg != "" {
			return errors.BadRequest(msg, nil)
		}
	}
	form, err := draft.BuildHomeForm(title, description, link, image)
	if err != nil {
		return errors.Internal("Failed to build home payload", err)
	}

	var saved *entity.HomeItem
	if id == "" {
		saved, err = c.gw.Home.Create(c.scope.Context(), c.section, form)
	} else {
		saved, err = c.gw.Home.Update(c.scope.Context(), c.section, id, form)
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if id == "" {
		c.items = append(c.items, *saved)
		return nil
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i] = *saved
			break
		}
	}
	return nil
}

func (c *Home) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

func (c *Home) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}

func (c *Home) ConfirmDelete() error {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	c.mu.Unlock()
	if id == "" {
		return errors.BadRequest("No item selected for deletion", nil)
	}

	if err := c.gw.Home.Delete(c.scope.Context(), c.section, id); err != nil {
		c.mu.Lock()
		c.banner(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	return nil
}
