// Package profiler exposes the profiler subsystem over HTTP: its own
// client and bank namespaces, profiles with a per-profile accounting
// summary, and the profiler ledger.
package profiler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/finops/backoffice/pkg/config"
	profilersvc "github.com/finops/backoffice/pkg/service/profiler"
)

// Routes registers every profiler endpoint under the given router group.
func Routes(
	r fiber.Router,
	clients *profilersvc.ClientService,
	banks *profilersvc.BankService,
	profiles *profilersvc.ProfileService,
	transactions *profilersvc.TransactionService,
	p config.PaginationConfig,
) {
	g := r.Group("/profiler")
	clientRoutes(g, clients, p)
	bankRoutes(g, banks, p)
	profileRoutes(g, profiles, transactions, p)
	transactionRoutes(g, transactions, p)
}
