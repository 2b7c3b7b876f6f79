package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func readBody[T any](r *http.Request) (T, error) {
	var body T

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return body, fmt.Errorf("failed to read request body: %w", err)
	}
	defer r.Body.Close()

	if len(bodyBytes) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return body, fmt.Errorf("failed to parse request body: %w", err)
	}
	return body, nil
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	response, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal response body", "error", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

// writeError translates usecase errors into HTTP statuses. Validation
// failures carry the whole field map so the UI can render every message.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, map[string]any{"errors": ve.Fields}, http.StatusBadRequest)
		return
	}

	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrBoosterNotFound),
		errors.Is(err, domain.ErrReportNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		writeJSON(w, map[string]string{"error": err.Error()}, http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrAlreadyClaimed),
		errors.Is(err, domain.ErrNotAvailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrIncompleteProgress),
		errors.Is(err, domain.ErrConfirmationMismatch):
		writeJSON(w, map[string]string{"error": err.Error()}, http.StatusConflict)
		return
	case errors.Is(err, domain.ErrNotAssigned):
		writeJSON(w, map[string]string{"error": err.Error()}, http.StatusForbidden)
		return
	case errors.Is(err, domain.ErrPaymentTimeout):
		writeJSON(w, map[string]string{"error": err.Error()}, http.StatusGatewayTimeout)
		return
	case errors.Is(err, domain.ErrPaymentFailed):
		writeJSON(w, map[string]string{"error": err.Error()}, http.StatusBadGateway)
		return
	}

	if st, ok := status.FromError(err); ok {
		writeJSON(w, map[string]string{"error": st.Message()}, httpStatusFromCode(st.Code()))
		return
	}

	slog.Error("unhandled API error", "error", err.Error())
	writeJSON(w, map[string]string{"error": "internal server error"}, http.StatusInternalServerError)
}

func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted, codes.FailedPrecondition:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
