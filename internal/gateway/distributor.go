package gateway

import (
	"context"
	"net/http"
	"net/url"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/draft"
	"catalogadmin/pkg/errors"
)

// DistributorService covers the public application form and the admin
// review endpoints.
type DistributorService struct {
	client *Client
}

// Submit files a new application. Public route, no token needed.
func (s *DistributorService) Submit(ctx context.Context, record draft.ApplicationRecord) (*entity.DistributorApplication, error) {
	body, err := marshalJSON(record)
	if err != nil {
		return nil, err
	}
	env, err := s.client.do(ctx, request{
		method:   http.MethodPost,
		path:     "/distributor",
		body:     body,
		fallback: "Submission failed",
	})
	if err != nil {
		return nil, err
	}
	application := &entity.DistributorApplication{}
	if err := decodePayload(env, application); err != nil {
		return nil, err
	}
	return application, nil
}

func (s *DistributorService) GetAll(ctx context.Context) ([]entity.DistributorApplication, error) {
	var applications []entity.DistributorApplication
	err := s.client.getJSON(ctx, "/admin/distributor", true, "Failed to fetch applications", &applications)
	return applications, err
}

func (s *DistributorService) GetByID(ctx context.Context, id string) (*entity.DistributorApplication, error) {
	application := &entity.DistributorApplication{}
	err := s.client.getJSON(ctx, "/admin/distributor/"+url.PathEscape(id), true, "Failed to fetch application", application)
	if err != nil {
		return nil, err
	}
	return application, nil
}

func (s *DistributorService) UpdateStatus(ctx context.Context, id string, status entity.ApplicationStatus) error {
	if !status.Valid() {
		return errors.BadRequest("Invalid application status", nil)
	}
	body, err := marshalJSON(map[string]string{"status": string(status)})
	if err != nil {
		return err
	}
	_, err = s.client.do(ctx, request{
		method:   http.MethodPatch,
		path:     "/admin/distributor/" + url.PathEscape(id) + "/status",
		body:     body,
		authed:   true,
		fallback: "Status update failed",
	})
	return err
}

func (s *DistributorService) Delete(ctx context.Context, id string) error {
	_, err := s.client.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/admin/distributor/" + url.PathEscape(id),
		authed:   true,
		fallback: "Delete failed",
	})
	return err
}

func (s *DistributorService) Count(ctx context.Context) (int64, error) {
	return s.client.count(ctx, "/admin/distributor/count", "Failed to fetch distributor count")
}

func (s *DistributorService) Recent(ctx context.Context) ([]entity.DistributorApplication, error) {
	var applications []entity.DistributorApplication
	err := s.client.getJSON(ctx, "/admin/distributor/recent", true, "Failed to fetch recent applications", &applications)
	return applications, err
}
