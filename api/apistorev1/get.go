package apistorev1

import (
	"context"
	"fmt"
	"net/http"
)

func get(ctx context.Context, w http.ResponseWriter, input *indexRequest) error {

	index, err := input.validate()
	if err != nil {
		return err
	}

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return err
	}

	record, ok := st.Get(index)
	if !ok {
		return fmt.Errorf("%w: index %d", ErrRecordNotFound, index)
	}

	return writeRecord(w, record)
}
