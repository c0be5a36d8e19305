package apistorev1

import (
	"context"
)

func getStore(ctx context.Context) (*StoreResponse, error) {

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	return &StoreResponse{
		Name:  st.Name,
		Total: st.Len(),
	}, nil
}
