// Package client exposes the client resource over HTTP.
package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/finops/backoffice/pkg/config"
	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	clientsvc "github.com/finops/backoffice/pkg/service/client"
	"github.com/finops/backoffice/webapi/common"
)

// Routes registers the client endpoints on the given router group.
func Routes(r fiber.Router, svc *clientsvc.Service, p config.PaginationConfig) {
	g := r.Group("/clients")
	g.Get("/paginated", Paginated(svc, p))
	g.Get("/autocomplete", Autocomplete(svc, p))
	g.Get("/:id", Get(svc))
	g.Post("/", Create(svc))
	g.Put("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))
}

func Paginated(svc *clientsvc.Service, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		q, err := common.ParseEntityListQuery(vs, query.Clients, p)
		if err != nil {
			return common.WriteError(c, err)
		}
		rows, total, err := svc.ListPaginated(c.Context(), q)
		if err != nil {
			return common.WriteError(c, err)
		}
		if rows == nil {
			rows = []*dto.ClientRead{}
		}
		payload := common.NewListPayload(rows, q.Page, total, q.Applied(), q.Search, q.Sort)
		return common.WriteSuccess(c, fiber.StatusOK, "CLIENTS_RETRIEVED", "clients retrieved successfully", payload)
	}
}

func Autocomplete(svc *clientsvc.Service, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		limit, err := common.AutocompleteLimit(vs, p.AutocompleteLimit, p.AutocompleteMaxLimit)
		if err != nil {
			return common.WriteError(c, err)
		}
		term := common.SearchTerm(vs)
		rows, err := svc.Autocomplete(c.Context(), term, limit)
		if err != nil {
			return common.WriteError(c, err)
		}
		payload := common.NewAutocompletePayload(rows, term, limit)
		return common.WriteSuccess(c, fiber.StatusOK, "CLIENTS_RETRIEVED", "clients retrieved successfully", payload)
	}
}

func Get(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		client, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "CLIENT_RETRIEVED", "client retrieved successfully", client)
	}
}

func Create(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.ClientCreate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		created, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusCreated, "CLIENT_CREATED", "client created successfully", created)
	}
}

func Update(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		input, err := common.BindAndValidate[dto.ClientUpdate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		updated, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "CLIENT_UPDATED", "client updated successfully", updated)
	}
}

func Delete(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "CLIENT_DELETED", "client deleted successfully", fiber.Map{"id": id})
	}
}
