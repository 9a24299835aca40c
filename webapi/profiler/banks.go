package profiler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/finops/backoffice/pkg/config"
	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	profilersvc "github.com/finops/backoffice/pkg/service/profiler"
	"github.com/finops/backoffice/webapi/common"
)

func bankRoutes(r fiber.Router, svc *profilersvc.BankService, p config.PaginationConfig) {
	g := r.Group("/banks")
	g.Get("/paginated", BanksPaginated(svc, p))
	g.Get("/autocomplete", BanksAutocomplete(svc, p))
	g.Get("/:id", GetBank(svc))
	g.Post("/", CreateBank(svc))
	g.Put("/:id", UpdateBank(svc))
	g.Delete("/:id", DeleteBank(svc))
}

func BanksPaginated(svc *profilersvc.BankService, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		q, err := common.ParseEntityListQuery(vs, query.ProfilerBanks, p)
		if err != nil {
			return common.WriteError(c, err)
		}
		rows, total, err := svc.ListPaginated(c.Context(), q)
		if err != nil {
			return common.WriteError(c, err)
		}
		if rows == nil {
			rows = []*dto.ProfilerBankRead{}
		}
		payload := common.NewListPayload(rows, q.Page, total, q.Applied(), q.Search, q.Sort)
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_BANKS_RETRIEVED", "profiler banks retrieved successfully", payload)
	}
}

func BanksAutocomplete(svc *profilersvc.BankService, p config.PaginationConfig) fiber.Handler {
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
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_BANKS_RETRIEVED", "profiler banks retrieved successfully", payload)
	}
}

func GetBank(svc *profilersvc.BankService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		bank, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_BANK_RETRIEVED", "profiler bank retrieved successfully", bank)
	}
}

func CreateBank(svc *profilersvc.BankService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.ProfilerBankCreate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		created, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusCreated, "PROFILER_BANK_CREATED", "profiler bank created successfully", created)
	}
}

func UpdateBank(svc *profilersvc.BankService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		input, err := common.BindAndValidate[dto.ProfilerBankUpdate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		updated, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_BANK_UPDATED", "profiler bank updated successfully", updated)
	}
}

func DeleteBank(svc *profilersvc.BankService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_BANK_DELETED", "profiler bank deleted successfully", fiber.Map{"id": id})
	}
}
