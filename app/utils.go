package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/sushihentaime/folio/internal/content"
)

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, values := range headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func (app *application) readIntParam(r *http.Request, key string) (int, error) {
	params := httprouter.ParamsFromContext(r.Context())

	n, err := strconv.Atoi(params.ByName(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", key)
	}

	return n, nil
}

func (app *application) readString(qs url.Values, key, defaultValue string) string {
	s := qs.Get(key)
	if s == "" {
		return defaultValue
	}
	return s
}

func (app *application) readInt(qs url.Values, key string, defaultValue int) (int, error) {
	s := qs.Get(key)
	if s == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: must be an integer", key)
	}

	return n, nil
}

// readDate parses key as YYYY-MM-DD, returning defaultValue when it is absent.
func (app *application) readDate(qs url.Values, key string, defaultValue time.Time) (time.Time, error) {
	s := qs.Get(key)
	if s == "" {
		return defaultValue, nil
	}

	d, err := content.ParseDate(s)
	if err != nil {
		if errors.Is(err, content.ErrInvalidDate) {
			return time.Time{}, fmt.Errorf("invalid %s parameter: must be a date like 2006-01-02", key)
		}
		return time.Time{}, err
	}

	return d, nil
}
