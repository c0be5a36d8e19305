package apistorev1

import (
	"context"

	"github.com/fulldump/box"
)

func drop(ctx context.Context) error {

	s := GetServicer(ctx)

	return s.DropStore(box.GetUrlParameter(ctx, "storeName"))
}
