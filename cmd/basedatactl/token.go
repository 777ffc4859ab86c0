package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/petcare-basedata/internal/app"
	"github.com/heartmarshall/petcare-basedata/internal/auth"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

func newTokenCmd(c *cli) *cobra.Command {
	var (
		userID   int64
		username string
		roles    []string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local development",
		Example: "  basedatactl token --user-id 1 --username admin --role ROLE_ADMIN\n" +
			"  basedatactl token --user-id 9 --username dm --role ROLE_DATA_MANAGER --ttl 8h",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}

			p := domain.Principal{UserID: userID, Username: username}
			for _, r := range roles {
				role := domain.Role(r)
				if !role.IsValid() {
					return fmt.Errorf("unknown role %q", r)
				}
				p.Roles = append(p.Roles, role)
			}

			if ttl <= 0 {
				ttl = cfg.Auth.AccessTokenTTL
			}
			tok, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 0, "Subject user id (required)")
	cmd.Flags().StringVar(&username, "username", "", "Username carried in the token")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "Role to grant; repeat or comma-separate")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default: auth.access_token_ttl)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
