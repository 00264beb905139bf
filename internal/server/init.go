package server

import (
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"creativista-api/internal/config"
	"creativista-api/internal/gemini"
	"creativista-api/internal/handlers"
	"creativista-api/internal/middleware"
	"creativista-api/internal/router"
	"creativista-api/internal/storage"
)

// Services holds all initialized process-wide dependencies. They are
// constructed once before the first request and read-only afterwards.
type Services struct {
	Store storage.Storage
	AI    gemini.Service // nil when no Gemini key is configured

	closers []func() error
}

// InitServices initializes the storage backend and AI client based on
// configuration. The storage backend is chosen once here: Postgres
// when DATABASE_URL is set, Firestore when only a Firebase project is
// configured, otherwise the volatile in-memory store.
func InitServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	svcs := &Services{}

	switch {
	case cfg.DatabaseURL != "":
		store, err := storage.NewPostgresStorage(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		svcs.Store = store
		svcs.closers = append(svcs.closers, store.Close)
		log.Info().Msg("using Postgres storage")

	case cfg.FirebaseProjectID != "":
		var opts []option.ClientOption
		if cfg.FirebaseCredentialsJSON != "" {
			// Raw JSON credentials from the environment (preferred for Vercel)
			opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON)))
		} else if cfg.FirebaseCredentialsPath != "" {
			// Credentials file (for local development)
			opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsPath))
		}

		client, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, opts...)
		if err != nil {
			return nil, err
		}
		svcs.Store = storage.NewFirestoreStorage(client, cfg.AdminsCollection, cfg.ImagesCollection)
		svcs.closers = append(svcs.closers, client.Close)
		log.Info().Msg("using Firestore storage")

	default:
		svcs.Store = storage.NewMemoryStorage()
		log.Warn().Msg("no database configured, using in-memory storage (records vanish on restart)")
	}

	if cfg.GeminiAPIKey != "" {
		ai, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.AIRequestTimeout)
		if err != nil {
			return nil, err
		}
		svcs.AI = ai
	}

	return svcs, nil
}

// Close releases backend connections.
func (s *Services) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			log.Warn().Err(err).Msg("error closing service")
		}
	}
}

// CreateHandler builds the full middleware pipeline around the route
// table: recovery, security headers, CORS, request IDs, request
// logging, body limit, then dispatch.
func CreateHandler(cfg *config.Config, svcs *Services) http.Handler {
	h := handlers.New(svcs.Store, svcs.AI)

	wrapped := router.Setup(h, cfg.AdminAPIKeys)
	wrapped = middleware.BodyLimit(cfg.MaxBodyBytes)(wrapped)
	wrapped = middleware.Logger(wrapped)
	wrapped = middleware.RequestID(wrapped)
	wrapped = middleware.CORS(wrapped, cfg.AllowedOrigins)
	wrapped = middleware.SecurityHeaders(wrapped)
	wrapped = middleware.Recover(wrapped)

	return wrapped
}
