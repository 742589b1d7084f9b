package gateway

import (
	"context"
	"net/http"
	"net/url"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/draft"
)

// AddressService wraps the /admin/addresses endpoints plus the public
// active-address listing used by the storefront.
type AddressService struct {
	client *Client
}

func (s *AddressService) Create(ctx context.Context, record draft.AddressRecord) (*entity.Address, error) {
	body, err := marshalJSON(record)
	if err != nil {
		return nil, err
	}
	env, err := s.client.do(ctx, request{
		method:   http.MethodPost,
		path:     "/admin/addresses",
		body:     body,
		authed:   true,
		fallback: "Failed to create address",
	})
	if err != nil {
		return nil, err
	}
	address := &entity.Address{}
	if err := decodePayload(env, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) GetAll(ctx context.Context) ([]entity.Address, error) {
	var addresses []entity.Address
	err := s.client.getJSON(ctx, "/admin/addresses", true, "Failed to fetch addresses", &addresses)
	return addresses, err
}

func (s *AddressService) GetByID(ctx context.Context, id string) (*entity.Address, error) {
	address := &entity.Address{}
	err := s.client.getJSON(ctx, "/admin/addresses/"+url.PathEscape(id), true, "Failed to fetch address", address)
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Update(ctx context.Context, id string, record draft.AddressRecord) (*entity.Address, error) {
	body, err := marshalJSON(record)
	if err != nil {
		return nil, err
	}
	env, err := s.client.do(ctx, request{
		method:   http.MethodPut,
		path:     "/admin/addresses/" + url.PathEscape(id),
		body:     body,
		authed:   true,
		fallback: "Failed to update address",
	})
	if err != nil {
		return nil, err
	}
	address := &entity.Address{}
	if err := decodePayload(env, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Delete(ctx context.Context, id string) error {
	_, err := s.client.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/admin/addresses/" + url.PathEscape(id),
		authed:   true,
		fallback: "Failed to delete address",
	})
	return err
}

func (s *AddressService) UpdateStatus(ctx context.Context, id, status string) error {
	body, err := marshalJSON(map[string]string{"status": status})
	if err != nil {
		return err
	}
	_, err = s.client.do(ctx, request{
		method:   http.MethodPatch,
		path:     "/admin/addresses/" + url.PathEscape(id) + "/status",
		body:     body,
		authed:   true,
		fallback: "Failed to update address status",
	})
	return err
}

func (s *AddressService) Count(ctx context.Context) (int64, error) {
	return s.client.count(ctx, "/admin/addresses/count", "Failed to fetch address count")
}

// Active lists customer-visible addresses. Public route, no token needed.
func (s *AddressService) Active(ctx context.Context) ([]entity.Address, error) {
	var addresses []entity.Address
	err := s.client.getJSON(ctx, "/addresses", false, "Failed to fetch active addresses", &addresses)
	return addresses, err
}
