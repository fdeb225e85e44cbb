// Command issue-token prints a bearer token for the API when JWT_SECRET is
// configured.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/BruksfildServices01/estetica-agenda/internal/config"
	"github.com/BruksfildServices01/estetica-agenda/internal/middleware"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Load()

	var (
		subject string
		secret  string
		ttl     time.Duration
	)

	flagSet := pflag.NewFlagSet("issue-token", pflag.ContinueOnError)
	flagSet.StringVarP(&subject, "subject", "s", "profissional", "token subject")
	flagSet.StringVar(&secret, "secret", cfg.JWTSecret, "HMAC secret (default: JWT_SECRET)")
	flagSet.DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime; 0 never expires")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	token, err := middleware.IssueToken(secret, subject, ttl, time.Now())
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
