// Package card exposes the card resource over HTTP.
package card

import (
	"github.com/gofiber/fiber/v2"

	"github.com/finops/backoffice/pkg/config"
	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	cardsvc "github.com/finops/backoffice/pkg/service/card"
	"github.com/finops/backoffice/webapi/common"
)

// Routes registers the card endpoints on the given router group.
func Routes(r fiber.Router, svc *cardsvc.Service, p config.PaginationConfig) {
	g := r.Group("/cards")
	g.Get("/paginated", Paginated(svc, p))
	g.Get("/autocomplete", Autocomplete(svc, p))
	g.Get("/:id", Get(svc))
	g.Post("/", Create(svc))
	g.Put("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))
}

func Paginated(svc *cardsvc.Service, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		q, err := common.ParseEntityListQuery(vs, query.Cards, p)
		if err != nil {
			return common.WriteError(c, err)
		}
		rows, total, err := svc.ListPaginated(c.Context(), q)
		if err != nil {
			return common.WriteError(c, err)
		}
		if rows == nil {
			rows = []*dto.CardRead{}
		}
		payload := common.NewListPayload(rows, q.Page, total, q.Applied(), q.Search, q.Sort)
		return common.WriteSuccess(c, fiber.StatusOK, "CARDS_RETRIEVED", "cards retrieved successfully", payload)
	}
}

func Autocomplete(svc *cardsvc.Service, p config.PaginationConfig) fiber.Handler {
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
		return common.WriteSuccess(c, fiber.StatusOK, "CARDS_RETRIEVED", "cards retrieved successfully", payload)
	}
}

func Get(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		card, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "CARD_RETRIEVED", "card retrieved successfully", card)
	}
}

func Create(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.CardCreate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		created, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusCreated, "CARD_CREATED", "card created successfully", created)
	}
}

func Update(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		input, err := common.BindAndValidate[dto.CardUpdate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		updated, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "CARD_UPDATED", "card updated successfully", updated)
	}
}

func Delete(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "CARD_DELETED", "card deleted successfully", fiber.Map{"id": id})
	}
}
