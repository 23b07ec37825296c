package main

import "sync"

// HandlerFunc mutates the response in place; a panic inside becomes a 500.
type HandlerFunc func(req *Request, res *Response)

// MiddlewareFunc returns the continuation signal: false aborts the
// pipeline and sends the response as the middleware left it.
type MiddlewareFunc func(req *Request, res *Response) bool

// Router holds the exact-match route table and the ordered middleware
// chain. Registration normally completes before serving starts; the lock
// makes late registration safe anyway.
type Router struct {
	mu         sync.RWMutex
	routes     map[string]map[string]HandlerFunc
	middleware []MiddlewareFunc
}

func NewRouter() *Router {
	return &Router{routes: make(map[string]map[string]HandlerFunc)}
}

// Handle registers handler for (method, exact path). Re-registering the
// same pair silently replaces the previous handler.
func (rt *Router) Handle(method, path string, handler HandlerFunc) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.routes[method] == nil {
		rt.routes[method] = make(map[string]HandlerFunc)
	}
	rt.routes[method][path] = handler
}

// Use appends mw to the chain; registration order is execution order.
func (rt *Router) Use(mw MiddlewareFunc) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.middleware = append(rt.middleware, mw)
}

func (rt *Router) lookup(method, path string) (HandlerFunc, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	h, ok := rt.routes[method][path]
	return h, ok
}

// runMiddleware executes the chain in order. It reports false as soon as
// one middleware aborts, leaving res exactly as that middleware set it.
func (rt *Router) runMiddleware(req *Request, res *Response) bool {
	rt.mu.RLock()
	chain := rt.middleware
	rt.mu.RUnlock()
	for _, mw := range chain {
		if !mw(req, res) {
			return false
		}
	}
	return true
}
