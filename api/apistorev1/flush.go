package apistorev1

import (
	"context"
)

func flush(ctx context.Context) error {

	st, err := getStoreFromUrl(ctx)
	if err != nil {
		return err
	}

	return st.Flush()
}
