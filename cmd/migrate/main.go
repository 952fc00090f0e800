// migrate aplica las migraciones embebidas y, opcionalmente, crea el primer usuario.
//
// Uso:
//
//	go run ./cmd/migrate
//	go run ./cmd/migrate -admin-email ops@example.com -admin-password 'secreto123' -admin-name Ops
//
// El primer usuario registrado queda como admin; si ya hay usuarios el alta se omite.
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/jhoicas/autoparts-api/internal/application/auth"
	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/infrastructure/postgres"
	"github.com/jhoicas/autoparts-api/pkg/config"
	"github.com/jhoicas/autoparts-api/pkg/logger"
)

func main() {
	adminEmail := flag.String("admin-email", "", "email del usuario inicial (opcional)")
	adminPassword := flag.String("admin-password", "", "password del usuario inicial (mín. 8)")
	adminName := flag.String("admin-name", "Administrador", "nombre del usuario inicial")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("migrate")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("esquema al día")

	if *adminEmail == "" {
		return
	}
	userRepo := postgres.NewUserRepository(pool)
	n, err := userRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("contar usuarios")
	}
	if n > 0 {
		log.Info().Int64("users", n).Msg("ya existen usuarios; se omite el alta inicial")
		return
	}
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	user, err := authUC.Register(ctx, dto.RegisterRequest{
		Email:    *adminEmail,
		Password: *adminPassword,
		Name:     *adminName,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Fatal().Err(err).Msg("datos del usuario inicial")
	case err != nil:
		log.Fatal().Err(err).Msg("crear usuario inicial")
	}
	log.Info().Str("email", user.Email).Str("role", user.Role).Msg("usuario inicial creado")
}
