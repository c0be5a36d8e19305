package apistorev1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type pushResponse struct {
	Index int `json:"index"`
}

type pushError struct {
	Error string `json:"error"`
}

// push appends every JSON value found in the body, so several records can
// be sent in one request as a stream. Once the first record is stored the
// status is already sent; a later failure ends the stream with an error line
// and the records before it stay stored.
func push(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return err
	}

	jsonReader := json.NewDecoder(r.Body)
	jsonWriter := json.NewEncoder(w)

	for i := 0; true; i++ {
		var record any
		err := jsonReader.Decode(&record)
		if err == io.EOF {
			if i == 0 {
				return fmt.Errorf("%w: empty body", ErrBadRequest)
			}
			return nil
		}
		if err == nil {
			var index int
			index, err = st.Push(record)
			if err == nil {
				if i == 0 {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusCreated)
				}
				jsonWriter.Encode(pushResponse{Index: index})
				continue
			}
		}

		if i == 0 {
			return err
		}
		jsonWriter.Encode(pushError{
			Error: fmt.Sprintf("record %d: %s", i, err.Error()),
		})
		return nil
	}

	return nil
}
