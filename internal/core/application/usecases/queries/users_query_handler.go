package queries

import (
	"context"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/ports"
)

type GetUsersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetUsersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetUsersQueryHandler {
	return GetUsersQueryHandler{uowFactory: uowFactory}
}

func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := query.Actor().Can(access.ManageUsers); err != nil {
		return nil, err
	}

	users, err := h.uowFactory.Create().UserRepository().List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, UserResponse{Username: u.Username(), Role: u.Role()})
	}
	return response, nil
}
