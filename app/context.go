package main

import (
	"context"
	"net/http"

	"github.com/sushihentaime/folio/internal/theme"
)

type contextKey string

const themeContextKey = contextKey("theme")

func (app *application) contextSetTheme(r *http.Request, t theme.Theme) *http.Request {
	ctx := context.WithValue(r.Context(), themeContextKey, t)
	return r.WithContext(ctx)
}

func (app *application) contextGetTheme(r *http.Request) theme.Theme {
	t, ok := r.Context().Value(themeContextKey).(theme.Theme)
	if !ok {
		return theme.Minimal
	}
	return t
}
