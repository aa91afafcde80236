package main

import (
	"context"
	"flag"
	"time"

	"github.com/franbz1/hotel-san-miguel/infrastructure/database/postgres"
	"github.com/franbz1/hotel-san-miguel/infrastructure/repository"
	"github.com/franbz1/hotel-san-miguel/internal/config"
	"github.com/franbz1/hotel-san-miguel/internal/domain"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/authenticating"
	"github.com/franbz1/hotel-san-miguel/pkg/log"
	"github.com/sirupsen/logrus"
)

// Script de inicialização: aplica as migrações e cadastra o administrador inicial.
//
//	go run ./infrastructure/migration/script -email admin@hotelsanmiguel.co -password 'Senha123' -nombre Admin
func main() {
	email := flag.String("email", "", "email do administrador")
	password := flag.String("password", "", "senha do administrador")
	nombre := flag.String("nombre", "Administrador", "nome do administrador")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := postgres.Migrate(conn.DB); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}
	logrus.Infof("Migrações concluídas em %v", time.Since(startTime))

	if *email == "" || *password == "" {
		logrus.Info("Email ou senha não informados, administrador não cadastrado")
		return
	}

	authenticator := authenticating.NewService(repository.NewUserRepository(conn), cfg.Auth)

	user, err := authenticator.CreateUser(ctx, &domain.User{
		Nombre:       *nombre,
		Email:        *email,
		PasswordHash: *password,
		RoleID:       1,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao cadastrar administrador")
	}

	logrus.WithFields(logrus.Fields{
		"id":    user.ID,
		"email": user.Email,
	}).Info("Administrador cadastrado com sucesso")
}
