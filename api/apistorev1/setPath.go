package apistorev1

import (
	"context"
	"fmt"
)

type setPathRequest struct {
	indexRequest
	Path  string `json:"path"`
	Value any    `json:"value"`
}

func setPath(ctx context.Context, input *setPathRequest) error {

	if input == nil {
		return fmt.Errorf("%w: empty request", ErrBadRequest)
	}

	index, err := input.validate()
	if err != nil {
		return err
	}
	if input.Path == "" {
		return fmt.Errorf("%w: field 'path' is required", ErrBadRequest)
	}

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return err
	}

	err = st.SetPath(index, input.Path, input.Value)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}

	return nil
}
