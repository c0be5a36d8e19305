package apistorev1

import (
	"context"
	"net/http"
)

func first(ctx context.Context, w http.ResponseWriter) error {

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return err
	}

	record, ok := st.First()
	if !ok {
		return ErrRecordNotFound
	}

	return writeRecord(w, record)
}

func last(ctx context.Context, w http.ResponseWriter) error {

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return err
	}

	record, ok := st.Last()
	if !ok {
		return ErrRecordNotFound
	}

	return writeRecord(w, record)
}
