package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/icecave/api/apistorev1"
	"github.com/fulldump/icecave/database"
)

var ErrUnavailable = errors.New("temporary unavailable")

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func writePrettyError(w http.ResponseWriter, status int, err error, description string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": PrettyError{
			Message:     err.Error(),
			Description: description,
		},
	})
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)
		r := box.GetRequest(ctx)

		var syntaxError *json.SyntaxError
		var typeError *json.UnmarshalTypeError

		switch {
		case err == box.ErrResourceNotFound:
			writePrettyError(w, http.StatusNotFound, err, fmt.Sprintf("resource '%s' not found", r.URL.String()))
		case err == box.ErrMethodNotAllowed:
			writePrettyError(w, http.StatusMethodNotAllowed, err, fmt.Sprintf("method '%s' not allowed", r.Method))
		case errors.Is(err, database.ErrStoreNotFound):
			writePrettyError(w, http.StatusNotFound, err, "store not found")
		case errors.Is(err, database.ErrStoreAlreadyExists):
			writePrettyError(w, http.StatusConflict, err, "store already exists")
		case errors.Is(err, apistorev1.ErrRecordNotFound):
			writePrettyError(w, http.StatusNotFound, err, "record not found")
		case errors.Is(err, apistorev1.ErrBadRequest):
			writePrettyError(w, http.StatusBadRequest, err, "bad request")
		case errors.Is(err, io.EOF):
			writePrettyError(w, http.StatusBadRequest, err, "Empty body")
		case errors.As(err, &syntaxError), errors.As(err, &typeError):
			writePrettyError(w, http.StatusBadRequest, err, "Malformed JSON")
		case errors.Is(err, ErrUnavailable):
			writePrettyError(w, http.StatusServiceUnavailable, err, "database is not operating")
		default:
			writePrettyError(w, http.StatusInternalServerError, err, "Unexpected error")
		}
	}
}
