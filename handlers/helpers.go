package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sportsworldcentral/fantasy-api/services"
)

type jsonResponse map[string]interface{}

// Формат дат в query-параметрах (minimum_last_changed_date).
const dateLayout = "2006-01-02"

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	if err != nil {
		return err
	}

	return nil
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	err := writeJSON(w, status, env, nil)
	if err != nil {
		slog.Error("failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal server error", slog.String("path", r.URL.Path), slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// notFoundResponse отвечает телом {"detail": ...} — формат исходного API SWC.
func notFoundResponse(w http.ResponseWriter, r *http.Request, detail string) {
	env := jsonResponse{"detail": detail}
	if err := writeJSON(w, http.StatusNotFound, env, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// mapServiceErrorToHTTP преобразует ошибки сервисного слоя в HTTP-ответы.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrPlayerNotFound):
		notFoundResponse(w, r, "Player not found")
	case errors.Is(err, services.ErrLeagueNotFound):
		notFoundResponse(w, r, "League not found")
	default:
		serverErrorResponse(w, r, err)
	}
}

// Общая вспомогательная функция для извлечения ID из URL.
func getIDFromURL(r *http.Request, paramName string) (int, error) {
	idStr := chi.URLParam(r, paramName)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s in URL path", paramName)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s in URL path: must be a positive integer", paramName)
	}
	return id, nil
}

func parseOptionalInt(q url.Values, name string) (*int, error) {
	val := q.Get(name)
	if val == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("invalid %s query parameter", name)
	}
	return &n, nil
}

func parseOptionalString(q url.Values, name string) *string {
	val := q.Get(name)
	if val == "" {
		return nil
	}
	return &val
}

func parseOptionalDate(q url.Values, name string) (*time.Time, error) {
	val := q.Get(name)
	if val == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, val)
	if err != nil {
		return nil, fmt.Errorf("invalid %s query parameter, expected YYYY-MM-DD", name)
	}
	return &d, nil
}

// parsePagination разбирает skip/limit и проверяет их диапазоны.
func parsePagination(q url.Values) (skip, limit *int, err error) {
	skip, err = parseOptionalInt(q, "skip")
	if err != nil {
		return nil, nil, err
	}
	if skip != nil && *skip < 0 {
		return nil, nil, errors.New("skip must be a non-negative integer")
	}

	limit, err = parseOptionalInt(q, "limit")
	if err != nil {
		return nil, nil, err
	}
	if limit != nil && *limit <= 0 {
		return nil, nil, errors.New("limit must be a positive integer")
	}

	return skip, limit, nil
}
