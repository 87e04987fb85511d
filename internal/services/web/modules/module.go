// Package modules lists the storefront page modules composed into the web
// root handler.
package modules

import (
	module "github.com/dailyharvest/storefront/internal/services/web/module"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module
