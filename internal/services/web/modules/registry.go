package modules

import (
	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/modules/admin"
	"github.com/dailyharvest/storefront/internal/services/web/modules/cart"
	"github.com/dailyharvest/storefront/internal/services/web/modules/contact"
	"github.com/dailyharvest/storefront/internal/services/web/modules/login"
	"github.com/dailyharvest/storefront/internal/services/web/modules/productimages"
	"github.com/dailyharvest/storefront/internal/services/web/modules/products"
	"github.com/dailyharvest/storefront/internal/services/web/modules/public"
)

// StorefrontModules returns the modules every visitor can reach.
func StorefrontModules(deps module.Dependencies) []Module {
	return []Module{
		public.New(deps),
		products.New(deps),
		productimages.New(deps),
		cart.New(deps),
		login.New(deps),
		contact.New(deps),
	}
}

// AdminModules returns the modules behind the admin sign-in.
func AdminModules(deps module.Dependencies) []Module {
	return []Module{
		admin.New(deps),
	}
}
