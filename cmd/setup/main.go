// Одноразовый шаг установки: прогоняет миграции и создает администратора
// по умолчанию, если его еще нет. Логин и пароль можно переопределить через
// SEED_ADMIN_EMAIL и SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"os"

	"github.com/fatih/color"

	"sessionvault/internal/app/server/config"
	admindom "sessionvault/internal/domain/admin"
	"sessionvault/internal/infrastructure/storage/postgres"
	"sessionvault/internal/utils/logger"
)

const (
	defaultSeedEmail    = "admin@sessionvault.local"
	defaultSeedPassword = "changeme"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	ctx := context.Background()

	color.Cyan("Running migrations...")
	storage, err := postgres.New(conf)
	if err != nil {
		log.Error("setup failed", "error", err)
		os.Exit(1)
	}
	defer storage.Close()
	color.Green("✓ Schema is up to date")

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = defaultSeedEmail
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = defaultSeedPassword
	}

	service := admindom.NewService(postgres.NewAdminRepository(storage.Pool(), log), log)

	account, created, err := service.Seed(ctx, email, password)
	if err != nil {
		log.Error("failed to seed admin", "error", err)
		os.Exit(1)
	}

	if created {
		color.Green("✓ Created default admin: %s", account.Email)
		if password == defaultSeedPassword {
			color.Yellow("  Default password is %q, change it after first login", defaultSeedPassword)
		}
	} else {
		color.Yellow("ℹ Admin %s already exists", account.Email)
	}

	color.Green("✓ Setup complete")
}
