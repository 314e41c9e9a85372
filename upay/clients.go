package upay

import (
	"context"
)

type customerService struct {
	transport *Transport
}

func (s *customerService) Create(ctx context.Context, req *CreateCustomerRequest) (*Customer, error) {
	const route = "/clients"

	if req == nil {
		return nil, nilRequestError()
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	resp, err := s.transport.Post(ctx, route, req)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Customer](resp, "client", "data")
}

func (s *customerService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[Customer], error) {
	const route = "/clients"

	if params == nil {
		params = &ListParams{}
	}
	if err := validate(params); err != nil {
		return nil, err
	}

	resp, err := s.transport.Get(ctx, route, params.query())
	if err != nil {
		return nil, err
	}
	return decodeList[Customer](resp, "clients")
}

func (s *customerService) Get(ctx context.Context, id string) (*Customer, error) {
	path, err := resourcePath("/clients", "id", id)
	if err != nil {
		return nil, err
	}

	resp, err := s.transport.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Customer](resp, "client", "data")
}

func (s *customerService) Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*Customer, error) {
	path, err := resourcePath("/clients", "id", id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	resp, err := s.transport.Patch(ctx, path, req)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Customer](resp, "client", "data")
}
