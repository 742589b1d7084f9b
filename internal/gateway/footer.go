package gateway

import (
	"context"
	"net/http"
	"net/url"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/draft"
)

type FooterService struct {
	client *Client
}

func (s *FooterService) GetAll(ctx context.Context) ([]entity.FooterRecord, error) {
	var records []entity.FooterRecord
	err := s.client.getJSON(ctx, "/admin/footer", true, "Failed to fetch footer details", &records)
	return records, err
}

func (s *FooterService) GetByID(ctx context.Context, id string) (*entity.FooterRecord, error) {
	record := &entity.FooterRecord{}
	err := s.client.getJSON(ctx, "/admin/footer/"+url.PathEscape(id), true, "Failed to fetch footer detail", record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *FooterService) Create(ctx context.Context, record draft.FooterRecordDraft) (*entity.FooterRecord, error) {
	body, err := marshalJSON(record)
	if err != nil {
		return nil, err
	}
	env, err := s.client.do(ctx, request{
		method:   http.MethodPost,
		path:     "/admin/footer",
		body:     body,
		authed:   true,
		fallback: "Failed to create footer detail",
	})
	if err != nil {
		return nil, err
	}
	created := &entity.FooterRecord{}
	if err := decodePayload(env, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *FooterService) Update(ctx context.Context, id string, record draft.FooterRecordDraft) (*entity.FooterRecord, error) {
	body, err := marshalJSON(record)
	if err != nil {
		return nil, err
	}
	env, err := s.client.do(ctx, request{
		method:   http.MethodPut,
		path:     "/admin/footer/" + url.PathEscape(id),
		body:     body,
		authed:   true,
		fallback: "Failed to update footer detail",
	})
	if err != nil {
		return nil, err
	}
	updated := &entity.FooterRecord{}
	if err := decodePayload(env, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *FooterService) Delete(ctx context.Context, id string) error {
	_, err := s.client.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/admin/footer/" + url.PathEscape(id),
		authed:   true,
		fallback: "Failed to delete footer detail",
	})
	return err
}

// Count lives at /admin/footer-count, not under the footer collection.
func (s *FooterService) Count(ctx context.Context) (int64, error) {
	return s.client.count(ctx, "/admin/footer-count", "Failed to fetch footer count")
}
