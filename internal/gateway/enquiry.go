package gateway

import (
	"context"
	"net/http"
	"net/url"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/pkg/errors"
)

type EnquiryService struct {
	client *Client
}

// GetAll lists enquiries with their statuses normalized, so dirty legacy
// values never leak into screen state.
func (s *EnquiryService) GetAll(ctx context.Context) ([]entity.Enquiry, error) {
	var enquiries []entity.Enquiry
	if err := s.client.getJSON(ctx, "/admin/enquiries", true, "Failed to fetch enquiries", &enquiries); err != nil {
		return nil, err
	}
	for i := range enquiries {
		enquiries[i].Status = enquiries[i].Status.Normalize()
	}
	return enquiries, nil
}

func (s *EnquiryService) GetByID(ctx context.Context, id string) (*entity.Enquiry, error) {
	enquiry := &entity.Enquiry{}
	err := s.client.getJSON(ctx, "/admin/enquiries/"+url.PathEscape(id), true, "Failed to fetch enquiry", enquiry)
	if err != nil {
		return nil, err
	}
	enquiry.Status = enquiry.Status.Normalize()
	return enquiry, nil
}

func (s *EnquiryService) UpdateStatus(ctx context.Context, id string, status entity.EnquiryStatus) error {
	if !status.Valid() {
		return errors.BadRequest("Invalid enquiry status", nil)
	}
	body, err := marshalJSON(map[string]string{"status": string(status)})
	if err != nil {
		return err
	}
	_, err = s.client.do(ctx, request{
		method:   http.MethodPatch,
		path:     "/admin/enquiries/" + url.PathEscape(id) + "/status",
		body:     body,
		authed:   true,
		fallback: "Failed to update enquiry status",
	})
	return err
}

func (s *EnquiryService) Delete(ctx context.Context, id string) error {
	_, err := s.client.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/admin/enquiries/" + url.PathEscape(id),
		authed:   true,
		fallback: "Failed to delete enquiry",
	})
	return err
}

func (s *EnquiryService) Count(ctx context.Context) (int64, error) {
	return s.client.count(ctx, "/admin/enquiries/count", "Failed to fetch enquiry count")
}

func (s *EnquiryService) Recent(ctx context.Context) ([]entity.Enquiry, error) {
	var enquiries []entity.Enquiry
	if err := s.client.getJSON(ctx, "/admin/enquiries/recent", true, "Failed to fetch recent enquiries", &enquiries); err != nil {
		return nil, err
	}
	for i := range enquiries {
		enquiries[i].Status = enquiries[i].Status.Normalize()
	}
	return enquiries, nil
}
