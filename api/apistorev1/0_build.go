package apistorev1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/icecave/service"
)

func BuildV1Store(v1 *box.R, s service.Servicer) *box.R {

	stores := v1.Resource("/stores").
		WithActions(
			box.Get(listStores),
			box.Post(createStore),
		)

	v1.Resource("/stores/{storeName}").
		WithActions(
			box.Get(getStore),
			box.ActionPost(push).WithName("push"),
			box.ActionPost(get).WithName("get"),
			box.ActionPost(set).WithName("set"),
			box.ActionPost(setPath).WithName("setPath"),
			box.ActionPost(remove).WithName("remove"),
			box.ActionPost(first).WithName("first"),
			box.ActionPost(last).WithName("last"),
			box.ActionPost(find).WithName("find"),
			box.ActionPost(filter).WithName("filter"),
			box.ActionPost(flush).WithName("flush"),
			box.ActionPost(drop).WithName("drop"),
		)

	return stores
}
