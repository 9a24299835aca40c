package main

import (
	"fmt"
	"os"

	"github.com/finops/backoffice/infra"
	bankrepo "github.com/finops/backoffice/infra/repository/bank"
	cardrepo "github.com/finops/backoffice/infra/repository/card"
	clientrepo "github.com/finops/backoffice/infra/repository/client"
	profilerrepo "github.com/finops/backoffice/infra/repository/profiler"
	transactionrepo "github.com/finops/backoffice/infra/repository/transaction"
	"github.com/finops/backoffice/pkg/config"
	"github.com/finops/backoffice/pkg/logging"
	banksvc "github.com/finops/backoffice/pkg/service/bank"
	cardsvc "github.com/finops/backoffice/pkg/service/card"
	clientsvc "github.com/finops/backoffice/pkg/service/client"
	profilersvc "github.com/finops/backoffice/pkg/service/profiler"
	reportsvc "github.com/finops/backoffice/pkg/service/report"
	transactionsvc "github.com/finops/backoffice/pkg/service/transaction"
	"github.com/finops/backoffice/webapi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	clients := clientrepo.New(db)
	banks := bankrepo.New(db)
	cards := cardrepo.New(db)
	transactions := transactionrepo.New(db)
	profilerClients := profilerrepo.NewClientRepository(db)
	profilerBanks := profilerrepo.NewBankRepository(db)
	profiles := profilerrepo.NewProfileRepository(db)
	profilerTransactions := profilerrepo.NewTransactionRepository(db)

	transactionSvc := transactionsvc.New(transactions, clients, banks, cards, logger)

	app := webapi.NewApp(webapi.Services{
		Clients:              clientsvc.New(clients, logger),
		Banks:                banksvc.New(banks, logger),
		Cards:                cardsvc.New(cards, logger),
		Transactions:         transactionSvc,
		Reports:              reportsvc.New(transactionSvc, cfg.Pagination.ReportMaxRows, logger),
		ProfilerClients:      profilersvc.NewClientService(profilerClients, logger),
		ProfilerBanks:        profilersvc.NewBankService(profilerBanks, logger),
		Profiles:             profilersvc.NewProfileService(profiles, profilerClients, profilerBanks, logger),
		ProfilerTransactions: profilersvc.NewTransactionService(profilerTransactions, profiles, logger),
	}, cfg, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
