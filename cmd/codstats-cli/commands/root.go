package commands

import (
	"context"
	"fmt"
	"os"

	"codstats-backend/lib/cod/dispatch"
	"codstats-backend/lib/cod/session"
	"codstats-backend/lib/configutil"
	"codstats-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codstats-cli",
	Short: "codstats-cli queries the stats backends with browser-session credentials.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Config holds the caller's credentials, read from codstats.json5
// somewhere up the tree. The sso token comes from the browser session
// cookie on the profile site; telescope credentials are plain
// username/password.
type Config struct {
	SsoToken  string `json:"sso_token"`
	Telescope struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"telescope"`
}

func newSession(ctx context.Context, needTelescope bool) *session.Session {
	config, err := configutil.ReadRecursively[Config]("codstats.json5")
	if err != nil {
		serviceutil.Fatal("failed to read codstats.json5", err)
	}

	sess, err := session.New(session.Options{})
	if err != nil {
		serviceutil.Fatal("failed to initialize session", err)
	}
	if !sess.LoginLegacy(config.SsoToken) {
		serviceutil.Fatal("legacy login failed", fmt.Errorf("sso_token is blank"))
	}
	if needTelescope {
		ok, err := sess.LoginTelescope(ctx, config.Telescope.Email, config.Telescope.Password)
		if err != nil {
			serviceutil.Fatal("telescope login failed", err)
		}
		if !ok {
			serviceutil.Fatal("telescope login failed", fmt.Errorf("telescope credentials missing or rejected"))
		}
	}
	return sess
}

func newDispatch() *dispatch.Client {
	d, err := dispatch.New(dispatch.Options{})
	if err != nil {
		serviceutil.Fatal("failed to initialize dispatcher", err)
	}
	return d
}
