package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/sushihentaime/folio/internal/common"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	handle := func(method, path string, h http.HandlerFunc) {
		router.Handler(method, path, app.instrument(path, h))
	}

	handle(http.MethodGet, "/v1/healthcheck", app.healthCheckHandler)

	// blog service
	handle(http.MethodGet, "/v1/posts", app.listPostsHandler)
	handle(http.MethodGet, "/v1/posts/random", app.randomPostsHandler)
	handle(http.MethodGet, "/v1/posts/picks", app.labelPicksHandler)
	handle(http.MethodGet, "/v1/music", app.listMusicHandler)
	handle(http.MethodGet, "/v1/friends", app.listFriendsHandler)

	// training service
	handle(http.MethodGet, "/v1/running/pbs", app.personalBestsHandler)
	handle(http.MethodGet, "/v1/training/weekly", app.weeklyTrainingHandler)
	handle(http.MethodGet, "/v1/training/stats", app.trainingStatsHandler)
	handle(http.MethodGet, "/v1/training/years/:year", app.yearAverageHandler)
	handle(http.MethodGet, "/v1/training/summary", app.trainingSummaryHandler)

	handle(http.MethodPost, "/v1/theme/toggle", app.toggleThemeHandler)

	router.Handler(http.MethodGet, "/metrics", common.MetricsHandler(app.registry))

	return app.recoverPanic(app.logRequest(app.rateLimit(app.loadTheme(router))))
}
