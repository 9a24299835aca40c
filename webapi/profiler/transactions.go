package profiler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/finops/backoffice/pkg/config"
	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	profilersvc "github.com/finops/backoffice/pkg/service/profiler"
	"github.com/finops/backoffice/webapi/common"
)

func transactionRoutes(r fiber.Router, svc *profilersvc.TransactionService, p config.PaginationConfig) {
	g := r.Group("/transactions")
	g.Get("/paginated", TransactionsPaginated(svc, p))
	g.Get("/:id", GetTransaction(svc))
	g.Post("/", CreateTransaction(svc))
	g.Put("/:id", UpdateTransaction(svc))
	g.Delete("/:id", DeleteTransaction(svc))
}

func parseTransactionListQuery(vs url.Values, p config.PaginationConfig) (dto.ProfilerTransactionListQuery, error) {
	page, err := query.ParsePage(vs, p.DefaultLimit, p.MaxLimit)
	if err != nil {
		return dto.ProfilerTransactionListQuery{}, err
	}
	profileIDs, err := query.IDSetParam(vs, "profile_id")
	if err != nil {
		return dto.ProfilerTransactionListQuery{}, err
	}
	txType, err := query.EnumParam(vs, "transaction_type", "deposit", "withdraw")
	if err != nil {
		return dto.ProfilerTransactionListQuery{}, err
	}
	minAmount, maxAmount, err := query.DecimalRange(vs, "min_amount", "max_amount")
	if err != nil {
		return dto.ProfilerTransactionListQuery{}, err
	}
	dates, err := query.DateRangeParam(vs, "start_date", "end_date")
	if err != nil {
		return dto.ProfilerTransactionListQuery{}, err
	}
	return dto.ProfilerTransactionListQuery{
		Page:       page,
		Sort:       query.ProfilerTransactions.ResolveSort(vs.Get("sort_by"), vs.Get("sort_order")),
		Search:     common.SearchTerm(vs),
		ProfileIDs: profileIDs,
		Type:       txType,
		MinAmount:  minAmount,
		MaxAmount:  maxAmount,
		Dates:      dates,
	}, nil
}

func TransactionsPaginated(svc *profilersvc.TransactionService, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		q, err := parseTransactionListQuery(vs, p)
		if err != nil {
			return common.WriteError(c, err)
		}
		rows, total, err := svc.ListPaginated(c.Context(), q)
		if err != nil {
			return common.WriteError(c, err)
		}
		if rows == nil {
			rows = []*dto.ProfilerTransactionRead{}
		}
		payload := common.NewListPayload(rows, q.Page, total, q.Applied(), q.Search, q.Sort)
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_TRANSACTIONS_RETRIEVED", "profiler transactions retrieved successfully", payload)
	}
}

func GetTransaction(svc *profilersvc.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		tx, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_TRANSACTION_RETRIEVED", "profiler transaction retrieved successfully", tx)
	}
}

func CreateTransaction(svc *profilersvc.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.ProfilerTransactionCreate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		created, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusCreated, "PROFILER_TRANSACTION_CREATED", "profiler transaction created successfully", created)
	}
}

func UpdateTransaction(svc *profilersvc.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		input, err := common.BindAndValidate[dto.ProfilerTransactionUpdate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		updated, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_TRANSACTION_UPDATED", "profiler transaction updated successfully", updated)
	}
}

func DeleteTransaction(svc *profilersvc.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILER_TRANSACTION_DELETED", "profiler transaction deleted successfully", fiber.Map{"id": id})
	}
}
