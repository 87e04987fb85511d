package app

import (
	"net/http"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
)

// BuildRootHandler mounts the storefront and admin groups. A request counts
// as signed in when deps resolve an admin for it.
func BuildRootHandler(deps module.Dependencies, storefront, admin []module.Module) (http.Handler, error) {
	return Compose(Routes{
		Storefront: storefront,
		Admin:      admin,
		SignedIn: func(r *http.Request) bool {
			_, ok := deps.Admin(r)
			return ok
		},
		SchemePolicy: deps.RequestMeta,
	})
}
