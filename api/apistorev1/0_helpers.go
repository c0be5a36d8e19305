package apistorev1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrBadRequest     = errors.New("bad request")
)

type StoreResponse struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

type indexRequest struct {
	Index *int `json:"index"`
}

func (r *indexRequest) validate() (int, error) {
	if r == nil || r.Index == nil {
		return 0, fmt.Errorf("%w: field 'index' is required", ErrBadRequest)
	}
	return *r.Index, nil
}

// writeRecord encodes a single record, JSON null included.
func writeRecord(w http.ResponseWriter, record any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(record)
}
