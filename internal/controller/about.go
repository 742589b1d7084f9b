package controller

import (
	"context"

	"catalogadmin/internal/draft"
	"catalogadmin/internal/gateway"
	"catalogadmin/internal/upload"
	"catalogadmin/pkg/errors"
)

// About drives the about page editor around one AboutDraft.
type About struct {
	screenState
	gw *gateway.Client

	Draft *draft.AboutDraft
}

func NewAbout(parent context.Context, gw *gateway.Client) *About {
	return &About{screenState: newScreenState(parent), gw: gw}
}

// Load fetches the current about content and seeds the draft from it.
func (c *About) Load() error {
	content, err := c.gw.About.Get(c.scope.Context())

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.fail(err)
		return err
	}
	c.Draft = draft.NewAbout(content)
	c.ready()
	return nil
}

// AttachImage stages a replacement for one image slot. A staged upload
// clears any pending removal of the same slot.
func (c *About) AttachImage(slot string, f *upload.File) error {
	if !draft.ValidAboutSlot(slot) {
		return errors.BadRequest("Unknown about image slot", nil)
	}
	if msg := upload.Check(f, upload.ImageTypes, draft.MaxFileSizeMB); msg != "" {
		return errors.BadRequest(msg, nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Draft.NewImages[slot] = f
	delete(c.Draft.Removed, slot)
	return nil
}

// RemoveImage marks a slot for deletion on the next save.
func (c *About) RemoveImage(slot string) error {
	if !draft.ValidAboutSlot(slot) {
		return errors.BadRequest("Unknown about image slot", nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.Draft.NewImages, slot)
	c.Draft.Removed[slot] = true
	return nil
}

// Save pushes the draft and reseeds it from the server's response, so saved
// image URLs replace the staged uploads.
func (c *About) Save() error {
	c.mu.Lock()
	d := c.Draft
	c.mu.Unlock()
	if d == nil {
		return errors.BadRequest("Nothing to save", nil)
	}

	content, err := c.gw.About.Update(c.scope.Context(), d)
	if err != nil {
		c.mu.Lock()
		c.banner(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.Draft = draft.NewAbout(content)
	c.ready()
	return nil
}
