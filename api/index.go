package handler

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"creativista-api/internal/config"
	"creativista-api/internal/server"
)

// bootstrap builds the full application on the first request and is
// reused across invocations of the same serverless instance.
//
// Note: backend clients are not explicitly closed as Vercel's
// serverless runtime handles resource cleanup on function termination.
var bootstrap = server.NewBootstrap(func() (http.Handler, error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return nil, err
	}

	svcs, err := server.InitServices(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize services")
		return nil, err
	}

	log.Info().Msg("handler initialized successfully")
	return server.CreateHandler(cfg, svcs), nil
})

// Handler is the Vercel serverless function entry point. Concurrent
// cold-start requests await the same initialization; a failure yields
// a 500 and is retried on the next request.
func Handler(w http.ResponseWriter, r *http.Request) {
	h, err := bootstrap.Handler()
	if err != nil {
		log.Error().Err(err).Msg("handler initialization failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.ServeHTTP(w, r)
}
