package main

import (
	"net/http"
	"time"

	"github.com/sushihentaime/folio/internal/blogservice"
	"github.com/sushihentaime/folio/internal/common"
	"github.com/sushihentaime/folio/internal/content"
	"github.com/sushihentaime/folio/internal/theme"
)

const (
	defaultRandomCount = 3
	defaultTimeframe   = "30"
	themeCookieMaxAge  = 365 * 24 * 60 * 60
)

func (app *application) listPostsHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filter := blogservice.PostFilter{
		Category: content.Category(app.readString(qs, "category", "")),
		Label:    app.readString(qs, "label", ""),
		Title:    app.readString(qs, "q", ""),
	}

	posts, err := app.blogService.Posts(filter)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"posts": posts}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) randomPostsHandler(w http.ResponseWriter, r *http.Request) {
	count, err := app.readInt(r.URL.Query(), "count", defaultRandomCount)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	posts, err := app.blogService.Random(count)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"posts": posts}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) labelPicksHandler(w http.ResponseWriter, r *http.Request) {
	picks, err := app.blogService.Picks(r.URL.Query()["label"])
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"picks": picks}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listMusicHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"music": app.blogService.Music()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listFriendsHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"friends": app.blogService.Friends()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) personalBestsHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"personal_bests": app.trainingService.PersonalBests()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) weeklyTrainingHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"weeks": app.trainingService.Weekly()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) trainingStatsHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	start, err := app.readDate(qs, "start", time.Time{})
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	end, err := app.readDate(qs, "end", time.Time{})
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	v := common.NewValidator()
	v.Check(!start.IsZero(), "start", "must be provided")
	v.Check(!end.IsZero(), "end", "must be provided")
	if !v.Valid() {
		app.failedValidationErrorResponse(w, r, v.Errors)
		return
	}

	stats, err := app.trainingService.Stats(start, end)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"stats": stats}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) yearAverageHandler(w http.ResponseWriter, r *http.Request) {
	year, err := app.readIntParam(r, "year")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	avg, err := app.trainingService.YearAverage(year)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"year": year, "weekly_average": avg}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) trainingSummaryHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	ref, err := app.readDate(qs, "ref", time.Now().UTC())
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	summary, err := app.trainingService.Summary(app.readString(qs, "timeframe", defaultTimeframe), ref)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"summary": summary}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) toggleThemeHandler(w http.ResponseWriter, r *http.Request) {
	next := theme.Toggle(app.contextGetTheme(r))

	http.SetCookie(w, &http.Cookie{
		Name:     theme.CookieName,
		Value:    next.String(),
		Path:     "/",
		MaxAge:   themeCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	err := app.writeJSON(w, http.StatusOK, envelope{"theme": next}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
