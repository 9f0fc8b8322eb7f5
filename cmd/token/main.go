// Command token prints a bearer token for a user id, signed with the same
// JWT settings the API reads from the environment.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"tasklist/internal/adapter/auth"
	"tasklist/internal/config"
)

func main() {
	userID := flag.Uint64("user", 0, "user id to put in the token subject")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if *userID == 0 {
		fmt.Fprintln(os.Stderr, "usage: token -user <id>")
		os.Exit(2)
	}

	cfg := config.LoadConfig()
	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		logger.Fatal("failed to configure token issuer", zap.Error(err))
	}

	token, err := issuer.Issue(*userID)
	if err != nil {
		logger.Fatal("failed to issue token", zap.Uint64("user_id", *userID), zap.Error(err))
	}
	fmt.Println(token)
}
