package apistorev1

import (
	"context"
	"fmt"
)

type setRequest struct {
	indexRequest
	Value any `json:"value"`
}

// set replaces a record. Out of range indexes are silently ignored, like
// the store does.
func set(ctx context.Context, input *setRequest) error {

	if input == nil {
		return fmt.Errorf("%w: empty request", ErrBadRequest)
	}

	index, err := input.validate()
	if err != nil {
		return err
	}

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return err
	}

	err = st.Set(index, input.Value)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}

	return nil
}
