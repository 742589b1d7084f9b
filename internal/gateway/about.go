package gateway

import (
	"context"
	"net/http"
	"net/url"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/draft"
	"catalogadmin/internal/upload"
	"catalogadmin/pkg/errors"
)

// AboutService manages the about page content and its image slots.
type AboutService struct {
	client *Client
}

// Get fetches the about content. With a stored token it uses the admin
// endpoint; without one it falls back to the public route, so the same call
// serves both the editor and a read-only preview.
func (s *AboutService) Get(ctx context.Context) (*entity.AboutContent, error) {
	content := &entity.AboutContent{}
	if _, err := s.client.tokens.Token(); err == nil {
		err := s.client.getJSON(ctx, "/admin/about", true, "Failed to fetch about data", content)
		return content, err
	}
	err := s.client.getJSON(ctx, "/about", false, "Failed to fetch about data", content)
	return content, err
}

func (s *AboutService) Update(ctx context.Context, d *draft.AboutDraft) (*entity.AboutContent, error) {
	form, err := draft.BuildAboutForm(d)
	if err != nil {
		return nil, errors.Internal("Failed to build about payload", err)
	}
	env, err := s.client.do(ctx, request{
		method:      http.MethodPatch,
		path:        "/admin/about",
		body:        form.Body.Bytes(),
		contentType: form.ContentType,
		authed:      true,
		fallback:    "Failed to update about data",
	})
	if err != nil {
		return nil, err
	}
	content := &entity.AboutContent{}
	if err := decodePayload(env, content); err != nil {
		return nil, err
	}
	return content, nil
}

// UploadImage replaces a single image slot outside a full about update.
func (s *AboutService) UploadImage(ctx context.Context, slot string, f *upload.File) error {
	if !draft.ValidAboutSlot(slot) {
		return errors.BadRequest("Unknown about image slot", nil)
	}
	form, err := draft.BuildImageForm(slot, f)
	if err != nil {
		return errors.Internal("Failed to build image payload", err)
	}
	_, err = s.client.do(ctx, request{
		method:      http.MethodPost,
		path:        "/admin/about/image",
		body:        form.Body.Bytes(),
		contentType: form.ContentType,
		authed:      true,
		fallback:    "Failed to upload " + slot,
	})
	return err
}

func (s *AboutService) DeleteImage(ctx context.Context, slot string) error {
	if !draft.ValidAboutSlot(slot) {
		return errors.BadRequest("Unknown about image slot", nil)
	}
	_, err := s.client.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/admin/about/image/" + url.PathEscape(slot),
		authed:   true,
		fallback: "Failed to delete " + slot,
	})
	return err
}
