package upay

import (
	"context"
)

type productService struct {
	transport *Transport
}

func (s *productService) Create(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	const route = "/products"

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
	return decodeEntity[Product](resp, "product", "data")
}

func (s *productService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[Product], error) {
	const route = "/products"

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
	return decodeList[Product](resp, "products")
}

func (s *productService) Get(ctx context.Context, id string) (*Product, error) {
	path, err := resourcePath("/products", "id", id)
	if err != nil {
		return nil, err
	}

	resp, err := s.transport.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Product](resp, "product", "data")
}

func (s *productService) Update(ctx context.Context, id string, req *UpdateProductRequest) (*Product, error) {
	path, err := resourcePath("/products", "id", id)
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
	return decodeEntity[Product](resp, "product", "data")
}

func (s *productService) Delete(ctx context.Context, id string) error {
	path, err := resourcePath("/products", "id", id)
	if err != nil {
		return err
	}

	_, err = s.transport.Delete(ctx, path)
	return err
}
