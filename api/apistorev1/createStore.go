package apistorev1

import (
	"context"
	"net/http"
)

type createStoreRequest struct {
	Name string `json:"name"`
}

func createStore(ctx context.Context, w http.ResponseWriter, input *createStoreRequest) (*StoreResponse, error) {

	s := GetServicer(ctx)

	st, err := s.CreateStore(input.Name)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return &StoreResponse{
		Name:  input.Name,
		Total: st.Len(),
	}, nil
}
