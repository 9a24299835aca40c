// Package webapi assembles the Fiber application: middleware, the uniform
// error surface and the versioned route tree.
package webapi

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/config"
	banksvc "github.com/finops/backoffice/pkg/service/bank"
	cardsvc "github.com/finops/backoffice/pkg/service/card"
	clientsvc "github.com/finops/backoffice/pkg/service/client"
	profilersvc "github.com/finops/backoffice/pkg/service/profiler"
	reportsvc "github.com/finops/backoffice/pkg/service/report"
	transactionsvc "github.com/finops/backoffice/pkg/service/transaction"
	"github.com/finops/backoffice/webapi/bank"
	"github.com/finops/backoffice/webapi/card"
	"github.com/finops/backoffice/webapi/client"
	"github.com/finops/backoffice/webapi/common"
	"github.com/finops/backoffice/webapi/profiler"
	"github.com/finops/backoffice/webapi/transaction"
)

// Services bundles everything the route tree needs.
type Services struct {
	Clients              *clientsvc.Service
	Banks                *banksvc.Service
	Cards                *cardsvc.Service
	Transactions         *transactionsvc.Service
	Reports              *reportsvc.Service
	ProfilerClients      *profilersvc.ClientService
	ProfilerBanks        *profilersvc.BankService
	Profiles             *profilersvc.ProfileService
	ProfilerTransactions *profilersvc.TransactionService
}

var knownRoutes = []string{
	"/api/v1/clients",
	"/api/v1/banks",
	"/api/v1/cards",
	"/api/v1/transactions",
	"/api/v1/profiler",
}

// NewApp builds the Fiber application with the uniform envelopes wired in.
func NewApp(svcs Services, cfg *config.AppConfig, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logger.Error("request failed", "path", c.Path(), "method", c.Method(), "error", err)
			return common.WriteError(c, err)
		},
	})

	app.Use(recover.New())
	app.Use(requestID())
	app.Use(requestLogger(logger))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.WriteError(c, apperr.RateLimit("too many requests, slow down"))
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return common.WriteSuccess(c, fiber.StatusOK, "HEALTHY", "service is up", fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")
	client.Routes(v1, svcs.Clients, cfg.Pagination)
	bank.Routes(v1, svcs.Banks, cfg.Pagination)
	card.Routes(v1, svcs.Cards, cfg.Pagination)
	transaction.Routes(v1, svcs.Transactions, svcs.Reports, cfg.Pagination)
	profiler.Routes(v1, svcs.ProfilerClients, svcs.ProfilerBanks, svcs.Profiles, svcs.ProfilerTransactions, cfg.Pagination)

	app.Use(func(c *fiber.Ctx) error {
		return common.WriteError(c,
			apperr.RouteNotFound("route not found: "+c.Method()+" "+c.Path(), knownRoutes))
	})

	return app
}

// requestID echoes the caller's X-Request-ID or mints one.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("request_id", id)
		return c.Next()
	}
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		logger.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"request_id", c.Locals("request_id"))
		return err
	}
}
