package main

import (
	"context"

	"github.com/franbz1/hotel-san-miguel/infrastructure/database/postgres"
	"github.com/franbz1/hotel-san-miguel/infrastructure/repository"
	"github.com/franbz1/hotel-san-miguel/internal/api"
	"github.com/franbz1/hotel-san-miguel/internal/config"
	"github.com/franbz1/hotel-san-miguel/internal/scheduler"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/authenticating"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/reporting"
	"github.com/franbz1/hotel-san-miguel/pkg/log"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	userRepo := repository.NewUserRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	occupancyRepo := repository.NewOccupancyRepository(pgConn)
	closingRepo := repository.NewRevenueClosingRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)

	revenueService := reporting.NewRevenueService(invoiceRepo)
	occupancyService := reporting.NewOccupancyService(occupancyRepo)
	closingService := reporting.NewClosingService(revenueService, closingRepo)

	revenueClosingService := scheduler.NewRevenueClosingService(closingService, cfg)
	if err := revenueClosingService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fechamento diário de receita")
	}

	server, err := api.New(cfg, api.Services{
		DB:             pgConn,
		Authenticator:  authenticator,
		Revenue:        revenueService,
		Occupancy:      occupancyService,
		Closing:        closingService,
		RevenueClosing: revenueClosingService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
