package gateway

import (
	"context"
	"net/http"
	"net/url"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/draft"
	"catalogadmin/pkg/errors"
)

// HomeService manages the three home page media sections: carousel,
// topImages and bottomImages.
type HomeService struct {
	client *Client
}

func sectionPath(section string) (string, error) {
	if !entity.ValidHomeSection(section) {
		return "", errors.BadRequest("Unknown home section", nil)
	}
	return "/admin/home/" + url.PathEscape(section), nil
}

func (s *HomeService) Create(ctx context.Context, section string, form *draft.Form) (*entity.HomeItem, error) {
	base, err := sectionPath(section)
	if err != nil {
		return nil, err
	}
	env, err := s.client.do(ctx, request{
		method:      http.MethodPost,
		path:        base,
		body:        form.Body.Bytes(),
		contentType: form.ContentType,
		authed:      true,
		fallback:    "Failed to create item in " + section,
	})
	if err != nil {
		return nil, err
	}
	item := &entity.HomeItem{}
	if err := decodePayload(env, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *HomeService) GetAll(ctx context.Context, section string) ([]entity.HomeItem, error) {
	base, err := sectionPath(section)
	if err != nil {
		return nil, err
	}
	var items []entity.HomeItem
	err = s.client.getJSON(ctx, base, true, "Failed to fetch items from "+section, &items)
	return items, err
}

func (s *HomeService) GetByID(ctx context.Context, section, id string) (*entity.HomeItem, error) {
	base, err := sectionPath(section)
	if err != nil {
		return nil, err
	}
	item := &entity.HomeItem{}
	err = s.client.getJSON(ctx, base+"/"+url.PathEscape(id), true, "Failed to fetch item from "+section, item)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *HomeService) Update(ctx context.Context, section, id string, form *draft.Form) (*entity.HomeItem, error) {
	base, err := sectionPath(section)
	if err != nil {
		return nil, err
	}
	env, err := s.client.do(ctx, request{
		method:      http.MethodPatch,
		path:        base + "/" + url.PathEscape(id),
		body:        form.Body.Bytes(),
		contentType: form.ContentType,
		authed:      true,
		fallback:    "Failed to update item in " + section,
	})
	if err != nil {
		return nil, err
	}
	item := &entity.HomeItem{}
	if err := decodePayload(env, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *HomeService) Delete(ctx context.Context, section, id string) error {
	base, err := sectionPath(section)
	if err != nil {
		return err
	}
	_, err = s.client.do(ctx, request{
		method:   http.MethodDelete,
		path:     base + "/" + url.PathEscape(id),
		authed:   true,
		fallback: "Failed to delete item from " + section,
	})
	return err
}
