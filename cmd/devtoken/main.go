package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/platform/auth/tokens"
	platformclock "github.com/taskboard-hq/taskboard-api/internal/platform/clock"
)

// Dev-only token minter. Signs an access token for a user id with the same
// secret the API uses, so local requests can be made without going through
// the login endpoint first.
//
//	TOKEN_SECRET=dev-secret go run ./cmd/devtoken -user 1
func main() {
	userID := flag.Int64("user", 0, "user id to mint a token for")
	ttl := flag.Duration("ttl", 30*time.Minute, "token lifetime")
	flag.Parse()

	secret := strings.TrimSpace(os.Getenv("TOKEN_SECRET"))
	if secret == "" {
		fmt.Fprintln(os.Stderr, "TOKEN_SECRET is required")
		os.Exit(1)
	}
	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "-user must be a positive id")
		os.Exit(1)
	}

	svc := tokens.NewService(secret, *ttl, platformclock.NewSystemClock())
	token, err := svc.Issue(domain.UserID(*userID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
