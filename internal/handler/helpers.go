package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"portfolio/internal/domain"
	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Typed domain
// errors carry a user-facing message and their own status.
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError

	switch {
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUpstream):
		httputil.RespondError(w, http.StatusBadGateway, "backend unavailable")
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// respondResult writes a mutation result. successStatus is used when the
// mutation succeeded (201 for creates, 200 otherwise).
func respondResult(w http.ResponseWriter, successStatus int, res services.Result) {
	httputil.RespondJSON(w, statusForResult(res, successStatus), res)
}

func statusForResult(res services.Result, successStatus int) int {
	switch res.Kind {
	case services.KindOK:
		return successStatus
	case services.KindMissingField, services.KindOutOfRange:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// pathID extracts and validates the {id} path parameter. On failure it has
// already written the response.
func pathID(w http.ResponseWriter, r *http.Request, entity string) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, entity+" ID is required")
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid "+entity+" ID format")
		return "", false
	}
	return id, true
}

// parseBody decodes a JSON or form body. On failure it has already
// written the response.
func parseBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := httputil.ParseBody(w, r, dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
