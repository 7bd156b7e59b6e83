package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"org-tasks-sync/pkg/gtasks"
)

func newAuthCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Tasks access and save the token",
		Long: `auth runs the installed-app OAuth flow for the credentials file in
google.credentials_path and stores the token at google.token_path.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := o.loadConfig()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(cfg.Google.CredentialsPath)
			if errors.Is(err, fs.ErrNotExist) {
				return usageErrorf("credentials file %s does not exist", cfg.Google.CredentialsPath)
			}
			if err != nil {
				return err
			}
			conf, err := gtasks.OAuthConfig(data)
			if err != nil {
				return fmt.Errorf("parse credentials: %w", err)
			}

			authURL := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
			fmt.Fprintf(cmd.ErrOrStderr(), "Open this URL and authorize access:\n\n%s\n\nAuthorization code: ", authURL)

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}
			tok, err := conf.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(cfg.Google.TokenPath), 0700); err != nil {
				return err
			}
			if err := gtasks.SaveToken(cfg.Google.TokenPath, tok); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", cfg.Google.TokenPath)
			return nil
		},
	}
}
