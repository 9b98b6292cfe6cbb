package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/identity"
	"github.com/vestalumina/vls-api/internal/repository/postgres"
	"github.com/vestalumina/vls-api/pkg/logger"
)

// Mints an id token for an existing identity, creating it first when a
// password is given and the email is unknown. Intended for local development.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	email := flag.String("email", "", "Email of the identity to mint a token for")
	password := flag.String("password", "", "Create the identity with this password if it does not exist")
	flag.Parse()

	if *email == "" {
		log.Fatal("Email is required")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConnections.Close()

	identities := identity.NewService(postgres.NewPostgresRepository(dbConnections).Identity(), cfg, appLogger)
	ctx := context.Background()

	account, err := identities.GetByEmail(ctx, *email)
	if errors.Is(err, identity.ErrIdentityNotFound) && *password != "" {
		account, err = identities.Create(ctx, identity.CreateParams{
			Email:         *email,
			Password:      *password,
			EmailVerified: true,
			Origin:        domain.IdentityOriginManual,
		})
	}
	if err != nil {
		log.Fatalf("Failed to load identity: %v", err)
	}

	token, err := identities.MintIDToken(ctx, account.UID)
	if err != nil {
		log.Fatalf("Error minting token: %v", err)
	}

	fmt.Printf("Generated ID Token for %s:\n%s\n", account.EmailAddress(), token)
}
