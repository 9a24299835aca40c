package profiler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/finops/backoffice/pkg/config"
	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	profilersvc "github.com/finops/backoffice/pkg/service/profiler"
	"github.com/finops/backoffice/webapi/common"
)

func clientRoutes(r fiber.Router, svc *profilersvc.ClientService, p config.PaginationConfig) {
	g := r.Group("/clients")
	g.Get("/paginated", ClientsPaginated(svc, p))
	g.Get("/autocomplete", ClientsAutocomplete(svc, p))
	g.Get("/:id", GetClient(svc))
	g.Post("/", CreateClient(svc))
	g.Put("/:id", UpdateClient(svc))
	g.Delete("/:id", DeleteClient(svc))
}

func ClientsPaginated(svc *profilersvc.ClientService, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		q, err := common.ParseEntityListQuery(vs, query.ProfilerClients, p)
		if err != nil {
			return common.WriteError(c, err)
		}
		rows, total, err := svc.ListPaginated(c.Context(), q)
		if err != nil {
			return common.WriteError(c, err)
		}
		if rows == nil {
			rows = []*dto.ProfilerClientRead{}
		}
		payload := common.NewListPayload(rows, q.Page, total, q.Applied(), q.Search, q.Sort)
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_CLIENTS_RETRIEVED", "profiler clients retrieved successfully", payload)
	}
}

func ClientsAutocomplete(svc *profilersvc.ClientService, p config.PaginationConfig) fiber.Handler {
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
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_CLIENTS_RETRIEVED", "profiler clients retrieved successfully", payload)
	}
}

func GetClient(svc *profilersvc.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		client, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_CLIENT_RETRIEVED", "profiler client retrieved successfully", client)
	}
}

func CreateClient(svc *profilersvc.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.ProfilerClientCreate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		created, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusCreated, "PROFILER_CLIENT_CREATED", "profiler client created successfully", created)
	}
}

func UpdateClient(svc *profilersvc.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		input, err := common.BindAndValidate[dto.ProfilerClientUpdate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		updated, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_CLIENT_UPDATED", "profiler client updated successfully", updated)
	}
}

func DeleteClient(svc *profilersvc.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_CLIENT_DELETED", "profiler client deleted successfully", fiber.Map{"id": id})
	}
}
