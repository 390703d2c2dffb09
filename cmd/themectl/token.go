package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/HerbHall/authdeck/internal/auth"
	"github.com/spf13/cobra"
)

type tokenOptions struct {
	profile   string
	username  string
	secretEnv string
	ttl       time.Duration
}

func newTokenCmd() *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local testing against a server with auth enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret := os.Getenv(opts.secretEnv)
			if len(secret) < 32 {
				return fmt.Errorf("%s must hold the server's auth.secret (at least 32 bytes)", opts.secretEnv)
			}
			if opts.profile == "" {
				return errors.New("--profile is required")
			}
			username := opts.username
			if username == "" {
				username = opts.profile
			}
			tok, err := auth.NewTokenService([]byte(secret), opts.ttl).IssueAccessToken(opts.profile, username)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.profile, "profile", "", "profile the token is scoped to")
	cmd.Flags().StringVar(&opts.username, "username", "", "display name claim (defaults to the profile)")
	cmd.Flags().StringVar(&opts.secretEnv, "secret-env", "AD_AUTH_SECRET", "environment variable holding the signing secret")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 15*time.Minute, "token lifetime")

	return cmd
}
