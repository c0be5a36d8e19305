package apistorev1

import (
	"context"
	"net/http"

	"github.com/fulldump/icecave/store"
)

type findRequest struct {
	Filter map[string]any `json:"filter"`
	Skip   int            `json:"skip"`
	Limit  int            `json:"limit"`
}

func find(ctx context.Context, w http.ResponseWriter, input *findRequest) error {

	if input == nil {
		input = &findRequest{}
	}

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return err
	}

	record, ok := st.Find(store.Where(input.Filter))
	if !ok {
		return ErrRecordNotFound
	}

	return writeRecord(w, record)
}

// filter returns every matching record; skip and limit page the result, a
// zero limit meaning no limit.
func filter(ctx context.Context, input *findRequest) ([]any, error) {

	if input == nil {
		input = &findRequest{}
	}

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	result := st.Filter(store.Where(input.Filter))

	if input.Skip > 0 {
		result = result[min(input.Skip, len(result)):]
	}
	if input.Limit > 0 && input.Limit < len(result) {
		result = result[:input.Limit]
	}

	return result, nil
}
