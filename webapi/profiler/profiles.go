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

func profileRoutes(
	r fiber.Router,
	svc *profilersvc.ProfileService,
	transactions *profilersvc.TransactionService,
	p config.PaginationConfig,
) {
	g := r.Group("/profiles")
	g.Get("/paginated", ProfilesPaginated(svc, p))
	g.Get("/:id/summary", ProfileSummary(transactions))
	g.Get("/:id", GetProfile(svc))
	g.Post("/", CreateProfile(svc))
	g.Put("/:id", UpdateProfile(svc))
	g.Delete("/:id", DeleteProfile(svc))
}

func parseProfileListQuery(vs url.Values, p config.PaginationConfig) (dto.ProfileListQuery, error) {
	page, err := query.ParsePage(vs, p.DefaultLimit, p.MaxLimit)
	if err != nil {
		return dto.ProfileListQuery{}, err
	}
	status, err := query.EnumParam(vs, "status", "active", "done")
	if err != nil {
		return dto.ProfileListQuery{}, err
	}
	clientIDs, err := query.IDSetParam(vs, "client_ids")
	if err != nil {
		return dto.ProfileListQuery{}, err
	}
	bankIDs, err := query.IDSetParam(vs, "bank_ids")
	if err != nil {
		return dto.ProfileListQuery{}, err
	}
	return dto.ProfileListQuery{
		Page:      page,
		Sort:      query.Profiles.ResolveSort(vs.Get("sort_by"), vs.Get("sort_order")),
		Search:    common.SearchTerm(vs),
		Status:    status,
		ClientIDs: clientIDs,
		BankIDs:   bankIDs,
	}, nil
}

func ProfilesPaginated(svc *profilersvc.ProfileService, p config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := common.QueryValues(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		q, err := parseProfileListQuery(vs, p)
		if err != nil {
			return common.WriteError(c, err)
		}
		rows, total, err := svc.ListPaginated(c.Context(), q)
		if err != nil {
			return common.WriteError(c, err)
		}
		if rows == nil {
			rows = []*dto.ProfileRead{}
		}
		payload := common.NewListPayload(rows, q.Page, total, q.Applied(), q.Search, q.Sort)
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILES_RETRIEVED", "profiles retrieved successfully", payload)
	}
}

func GetProfile(svc *profilersvc.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		profile, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILE_RETRIEVED", "profile retrieved successfully", profile)
	}
}

// ProfileSummary returns the per-profile accounting rollup: total deposits,
// withdrawals, charges and the running balance.
func ProfileSummary(svc *profilersvc.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		summary, err := svc.Summary(c.Context(), id)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILE_SUMMARY_RETRIEVED", "profile summary retrieved successfully", summary)
	}
}

func CreateProfile(svc *profilersvc.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.ProfileCreate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		created, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusCreated, "PROFILE_CREATED", "profile created successfully", created)
	}
}

func UpdateProfile(svc *profilersvc.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		input, err := common.BindAndValidate[dto.ProfileUpdate](c)
		if err != nil {
			return common.WriteError(c, err)
		}
		updated, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILE_UPDATED", "profile updated successfully", updated)
	}
}

func DeleteProfile(svc *profilersvc.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c)
		if err != nil {
			return common.WriteError(c, err)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.WriteError(c, err)
		}
		return common.WriteSuccess(c, fiber.StatusOK, "PROFILE_DELETED", "profile deleted successfully", fiber.Map{"id": id})
	}
}
