// Package transaction exposes the ledger resource over HTTP, including the
// PDF and Excel report downloads.
package transaction

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/finops/backoffice/pkg/config"
	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	reportsvc "github.com/finops/backoffice/pkg/service/report"
	transactionsvc "github.com/finops/backoffice/pkg/service/transaction"
	"github.com/finops/backoffice/webapi/common"
)

// Routes registers the transaction endpoints on the given router group.
func Routes(r fiber.Router, svc *transactionsvc.Service, reports *reportsvc.Service, p config.PaginationConfig) {
	g := r.Group("/transactions")
	g.Get("/paginated", Paginated(svc, p))
	g.Get("/report/pdf", ReportPDF(reports, p))
	g.Get("/report/excel", ReportExcel(reports, p))
	g.Get("/:id", Get(svc))
	g.Post("/", Create(svc))
	g.Put("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))
}

// parseListQuery normalizes the full ledger filter set: pagination, sort,
// search, type, amount range, date range and the three id-set filters.
func parseListQuery(vs url.Values, p config.PaginationConfig) (dto.TransactionListQuery, error) {
	page, err := query.ParsePage(vs, p.DefaultLimit, p.MaxLimit)
	if err != nil {
		return dto.TransactionListQuery{}, err
	}
	txType, err := query.IntEnumParam(vs, "transaction_type", 0, 1)
	if err != nil {
		return dto.TransactionListQuery{}, err
	}
	minAmount, maxAmount, err := query.DecimalRange(vs, "min_amount", "max_amount")
	if err != nil {
		return dto.TransactionListQuery{}, err
	}
	dates, err := query.DateRangeParam(vs, "start_date", "end_date")
	if err != nil {
		return dto.TransactionListQuery{}, err
	}
	bankIDs, err := query.IDSetParam(vs, "bank_ids")
	if err != nil {
		return dto.TransactionListQuery{}, err
	}
	cardIDs, err := query.IDSetParam(vs, "card_ids")
	if err != nil {
		return dto.TransactionListQuery{}, err
	}
	clientIDs, err := query.IDSetParam(vs, "client_ids")
	if err != nil {
		return dto.TransactionListQuery{}, err
	}
	return dto.TransactionListQuery{
		Page:      page,
		Sort:      query.Transactions.ResolveSort(vs.Get("sort_by"), vs.Get("sort_order")),
		Search:    common.SearchTerm(vs),
		Type:      txType,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
		Dates:     dates,
		BankIDs:   bankIDs,
		CardIDs:   cardIDs,
		ClientIDs: clientIDs,
	}, nil
}

func Paginated(svc *transactionsvc.Service, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		q, err := parseListQuery(vs, p)
		if err != nil {
			return common.WriteError(c, err)
		}
		rows, total, err := svc.ListPaginated(c.Context(), q)
		if err != nil {
			return common.WriteError(c, err)
		}
		if rows == nil {
			rows = []*dto.TransactionRead{}
		}
		payload := common.NewListPayload(rows, q.Page, total, q.Applied(), q.Search, q.Sort)
		return common.WriteSuccess(c, fiber.StatusOK, "TRANSACTIONS_RETRIEVED", "transactions retrieved successfully", payload)
	}
}

func Get(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		tx, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "TRANSACTION_RETRIEVED", "transaction retrieved successfully", tx)
	}
}

func Create(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.TransactionCreate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		created, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusCreated, "TRANSACTION_CREATED", "transaction created successfully", created)
	}
}

func Update(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		input, err := common.BindAndValidate[dto.TransactionUpdate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		updated, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "TRANSACTION_UPDATED", "transaction updated successfully", updated)
	}
}

func Delete(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "TRANSACTION_DELETED", "transaction deleted successfully", fiber.Map{"id": id})
	}
}

// ReportPDF streams the filtered ledger as a PDF attachment. The report
// honors the same filters as the paginated list; pagination itself is
// ignored in favor of the configured row cap.
func ReportPDF(reports *reportsvc.Service, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		q, err := parseListQuery(vs, p)
		if err != nil {
			return common.WriteError(c, err)
		}
		doc, name, err := reports.BuildPDF(c.Context(), q)
		if err != nil {
			return common.WriteError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
		return c.Send(doc)
	}
}

// ReportExcel streams the filtered ledger as an xlsx attachment.
func ReportExcel(reports *reportsvc.Service, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		q, err := parseListQuery(vs, p)
		if err != nil {
			return common.WriteError(c, err)
		}
		doc, name, err := reports.BuildExcel(c.Context(), q)
		if err != nil {
			return common.WriteError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
		return c.Send(doc)
	}
}
