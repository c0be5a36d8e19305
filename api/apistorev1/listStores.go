package apistorev1

import (
	"context"
)

func listStores(ctx context.Context) ([]*StoreResponse, error) {

	s := GetServicer(ctx)

	result := []*StoreResponse{}
	for _, name := range s.ListStores() {
		st, err := s.GetStore(name)
		if err != nil {
			continue // dropped meanwhile
		}
		result = append(result, &StoreResponse{
			Name:  name,
			Total: st.Len(),
		})
	}

	return result, nil
}
