package controller

import (
	"context"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/draft"
	"catalogadmin/internal/gateway"
	"catalogadmin/pkg/errors"
)

// Footer drives the footer content editor.
type Footer struct {
	screenState
	gw *gateway.Client

	records       []entity.FooterRecord
	pendingDelete string
}

func NewFooter(parent context.Context, gw *gateway.Client) *Footer {
	return &Footer{screenState: newScreenState(parent), gw: gw}
}

func (c *Footer) Load() error {
	records, err := c.gw.Footer.GetAll(c.scope.Context())

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.fail(err)
		return err
	}
	c.records = records
	c.ready()
	return nil
}

func (c *Footer) List() []entity.FooterRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records
}

// Save validates the draft and creates or updates the record. The returned
// map carries client-side validation errors.
func (c *Footer) Save(id string, record draft.FooterRecordDraft) (map[string]string, error) {
	if errs := draft.CheckRecord(record); len(errs) > 0 {
		return errs, nil
	}

	var (
		saved *entity.FooterRecord
		err   error
	)
	if id == "" {
		saved, err = c.gw.Footer.Create(c.scope.Context(), record)
	} else {
		saved, err = c.gw.Footer.Update(c.scope.Context(), id, record)
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if id == "" {
		c.records = append(c.records, *saved)
		return nil, nil
	}
	for i := range c.records {
		if c.records[i].ID == id {
			c.records[i] = *saved
			break
		}
	}
	return nil, nil
}

func (c *Footer) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

func (c *Footer) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}

func (c *Footer) ConfirmDelete() error {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	c.mu.Unlock()
	if id == "" {
		return errors.BadRequest("No footer record selected for deletion", nil)
	}

	if err := c.gw.Footer.Delete(c.scope.Context(), id); err != nil {
		c.mu.Lock()
		c.banner(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if c.records[i].ID == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			break
		}
	}
	return nil
}
