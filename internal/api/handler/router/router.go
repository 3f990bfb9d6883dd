package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/transaction-dashboard/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // middlewares aplicados só a esta rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// New cria o router; rotas e métodos desconhecidos respondem no formato APIError
func New(configs ...ConfigRouter) Router {
	hr := httprouter.New()
	hr.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "route not found: "+r.URL.Path, nil)
	})
	hr.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path, nil)
	})

	router := &Router{router: hr}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas, envolvendo cada handler com seus middlewares
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
