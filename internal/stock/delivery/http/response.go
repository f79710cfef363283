package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tair/stock-tracker/internal/stock/domain"
	"github.com/tair/stock-tracker/pkg/logger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
		return domain.HexCodePattern.MatchString(fl.Field().String())
	})
	return v
}

// decodeAndValidate decodes the JSON body into req and runs its validate tags.
// It writes the error response and returns false when the request is unusable.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) {
			respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: derr.Message})
			return false
		}
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "Invalid request body"})
		return false
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "Invalid request body"})
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: "Validation failed", Fields: fields})
		return false
	}
	return true
}

// respondError maps a use case error onto a status code and writes it.
func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidYearMonth):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context()).Err(err).Msg(msg)
		respondJSON(w, status, ErrorResponse{Detail: "Internal server error"})
		return
	}

	detail := err.Error()
	var derr *domain.Error
	if errors.As(err, &derr) {
		detail = derr.Message
	}
	logger.Debug(r.Context()).Err(err).Int("status", status).Msg(msg)
	respondJSON(w, status, ErrorResponse{Detail: detail})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
