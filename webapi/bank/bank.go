// Package bank exposes the bank resource over HTTP.
package bank

import (
	"github.com/gofiber/fiber/v2"

	"github.com/finops/backoffice/pkg/config"
	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	banksvc "github.com/finops/backoffice/pkg/service/bank"
	"github.com/finops/backoffice/webapi/common"
)

// Routes registers the bank endpoints on the given router group.
func Routes(r fiber.Router, svc *banksvc.Service, p config.PaginationConfig) {
	g := r.Group("/banks")
	g.Get("/paginated", Paginated(svc, p))
	g.Get("/autocomplete", Autocomplete(svc, p))
	g.Get("/:id", Get(svc))
	g.Post("/", Create(svc))
	g.Put("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))
}

func Paginated(svc *banksvc.Service, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		q, err := common.ParseEntityListQuery(vs, query.Banks, p)
		if err != nil {
			return common.WriteError(c, err)
		}
		rows, total, err := svc.ListPaginated(c.Context(), q)
		if err != nil {
			return common.WriteError(c, err)
		}
		if rows == nil {
			rows = []*dto.BankRead{}
		}
		payload := common.NewListPayload(rows, q.Page, total, q.Applied(), q.Search, q.Sort)
		return common.WriteSuccess(c, fiber.StatusOK, "BANKS_RETRIEVED", "banks retrieved successfully", payload)
	}
}

func Autocomplete(svc *banksvc.Service, p config.PaginationConfig) fiber.Handler {
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
		return common.WriteSuccess(c, fiber.StatusOK, "BANKS_RETRIEVED", "banks retrieved successfully", payload)
	}
}

func Get(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		bank, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "BANK_RETRIEVED", "bank retrieved successfully", bank)
	}
}

func Create(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.BankCreate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		created, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusCreated, "BANK_CREATED", "bank created successfully", created)
	}
}

func Update(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		input, err := common.BindAndValidate[dto.BankUpdate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		updated, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "BANK_UPDATED", "bank updated successfully", updated)
	}
}

func Delete(svc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "BANK_DELETED", "bank deleted successfully", fiber.Map{"id": id})
	}
}
