package apistorev1

import (
	"context"
)

func remove(ctx context.Context, input *indexRequest) error {

	index, err := input.validate()
	if err != nil {
		return err
	}

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return err
	}

	st.Remove(index)

	return nil
}
