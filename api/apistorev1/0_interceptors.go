package apistorev1

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/icecave/service"
	"github.com/fulldump/icecave/store"
)

const ContextServicerKey = "0b6f5f0a-3c1e-4f55-9a57-6c4f2f9d1e21"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer)
}

func getStoreFromUrl(ctx context.Context) (*store.Store, error) {
	return GetServicer(ctx).GetStore(box.GetUrlParameter(ctx, "storeName"))
}
