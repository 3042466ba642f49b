package command

// admin.go holds the commands that work on the database directly: migrate,
// seed and token.

import (
	"context"
	"fmt"
	"time"

	"exlibris/cmd/cli/authentication"
	"exlibris/database"
	"exlibris/database/migrations"
	"exlibris/database/seed"
	"exlibris/internal/config"
	"exlibris/internal/microservices/http-api/repository"
	"exlibris/internal/microservices/http-api/service"
	"exlibris/internal/shared"
	"exlibris/pkg/cache"
	"exlibris/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const adminTimeout = 5 * time.Minute

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.GoEnv, cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}

// withDB opens the database, applies the schema and runs fn.
func withDB(fn func(ctx context.Context, cfg *config.Config, db *gorm.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), adminTimeout)
	defer cancel()

	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.DatabaseDebug)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	return fn(ctx, cfg, db)
}

// invalidateContext drops the cached sidebar context so running API servers
// pick up changed genres and authors. Without redis there is nothing to drop.
func invalidateContext(ctx context.Context, cfg *config.Config, db *gorm.DB) {
	if !cfg.CacheEnabled() {
		return
	}
	rc, err := cache.NewRedisCache(cfg.RedisURL, cfg.RedisPassword, cache.KeyPrefix)
	if err != nil {
		log.Warn().Err(err).Msg("invalid redis configuration, cached context left as is")
		return
	}
	defer rc.Close()

	svc := service.NewContextService(repository.NewCatalogRepository(db), rc, cfg.CacheTTLDuration(), cfg.MediaURL)
	if err := svc.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("could not invalidate cached context")
	}
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(context.Context, *config.Config, *gorm.DB) error {
			success.Println("✓ Schema is up to date")
			return nil
		})
	},
}

var migrateLegacyCmd = &cobra.Command{
	Use:   "legacy",
	Short: "Convert first-generation genre columns to the current schema",
	Long: `Turns Book.legacy_genre free text into genre references, creating
genres by slug when needed, and QuizOption.legacy_genre_id into genre
weights. Legacy columns are cleared, so running it again changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
			report, err := migrations.Legacy(ctx, db)
			if err != nil {
				return fmt.Errorf("legacy migration failed: %w", err)
			}
			invalidateContext(ctx, cfg, db)
			success.Println("✓ Legacy migration finished")
			fmt.Printf("Books linked to a genre: %d\n", report.BooksLinked)
			fmt.Printf("Genres created:          %d\n", report.GenresCreated)
			fmt.Printf("Quiz options converted:  %d\n", report.OptionsConverted)
			fmt.Printf("Legacy values cleared:   %d\n", report.LegacyCleared)
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load catalog fixtures (genres, books, quiz, forum groups...)",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		fx, err := seed.Load(file)
		if err != nil {
			return err
		}
		if dryRun, _ := cmd.Flags().GetBool("validate-only"); dryRun {
			success.Println("✓ Fixtures are valid")
			return nil
		}

		return withDB(func(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
			res, err := seed.Apply(ctx, db, fx)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			invalidateContext(ctx, cfg, db)
			success.Println("✓ Seed applied")
			fmt.Printf("Genres: %d, authors: %d, books: %d, audiobooks: %d\n", res.Genres, res.Authors, res.Books, res.Audiobooks)
			fmt.Printf("Forum groups: %d, challenges: %d, quiz questions: %d, marquee: %d\n", res.ForumGroups, res.Challenges, res.Questions, res.Marquee)
			return nil
		})
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token for development",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		identity := shared.Identity{}
		identity.UserID, _ = cmd.Flags().GetString("user-id")
		identity.Username, _ = cmd.Flags().GetString("username")
		identity.Role, _ = cmd.Flags().GetString("role")
		if identity.UserID == "" {
			identity.UserID = uuid.NewString()
		}

		issued, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry).Issue(identity)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			err := authentication.StoreTokens(&authentication.StoredCredentials{
				AccessToken: issued,
				Username:    identity.Username,
				ExpiresAt:   time.Now().Add(cfg.JWTExpiry).Unix(),
			})
			if err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			success.Printf("✓ Token saved for %s (user id %s)\n", identity.Username, identity.UserID)
			return nil
		}
		fmt.Println(issued)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteTokens(); err != nil {
			return err
		}
		success.Println("✓ Successfully logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, tokenCmd, logoutCmd)
	migrateCmd.AddCommand(migrateLegacyCmd)

	seedCmd.Flags().StringP("file", "f", "", "fixtures JSON file (defaults to the built-in set)")
	seedCmd.Flags().Bool("validate-only", false, "only validate the fixtures")

	tokenCmd.Flags().String("user-id", "", "user id (uuid); a new one is generated when empty")
	tokenCmd.Flags().StringP("username", "u", "", "username carried in the token")
	tokenCmd.Flags().String("role", "user", "role carried in the token")
	tokenCmd.Flags().Bool("save", false, "store the token in the OS keyring for later commands")
	tokenCmd.MarkFlagRequired("username")
}
