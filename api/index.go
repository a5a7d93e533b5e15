package handler

import (
	"net/http"

	"airtech/config"
	"airtech/di"
	"airtech/shared/logger"
)

// Handler is the serverless entrypoint. It builds the full service per
// invocation and dispatches the request into the router.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}
