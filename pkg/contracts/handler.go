package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by anything that mounts routes on a router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// RoutesFunc adapts a plain function to Handler.
type RoutesFunc func(*httprouter.Router)

func (f RoutesFunc) RegisterRoutes(router *httprouter.Router) {
	f(router)
}
