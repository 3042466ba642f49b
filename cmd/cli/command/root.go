package command

// root.go defines the root command of exlibctl and its global flags.

import (
	"fmt"
	"os"

	"exlibris/cmd/cli/authentication"
	"exlibris/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var (
	apiURL string // API server URL
	token  string // access token (jwt), overrides the stored one
)

var rootCmd = &cobra.Command{
	Use:   "exlibctl",
	Short: "exlibctl - Ex Libris command line tool",
	Long: `exlibctl administers an Ex Libris installation and talks to its API.

Administration (reads DATABASE_URL and JWT_SECRET from the environment or .env):
- migrate the schema and convert legacy genre data
- seed the catalog from JSON fixtures
- mint access tokens for development

API commands browse books, take the recommendation quiz, manage bookmarks
and read or write forum posts.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "access token (defaults to the one saved by 'exlibctl token --save')")
}

// newClient builds an API client. With requireAuth a missing token is an
// error instead of an anonymous request.
func newClient(requireAuth bool) (*client.HTTPClient, error) {
	c := client.NewHTTPClient(apiURL)

	t := token
	if t == "" {
		if creds, err := authentication.GetTokens(); err == nil {
			t = creds.AccessToken
		}
	}
	if t == "" && requireAuth {
		return nil, fmt.Errorf("not logged in, run 'exlibctl token --username <name> --save' or pass --token")
	}
	c.SetToken(t)
	return c, nil
}
