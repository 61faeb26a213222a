package router

import (
	"net/http"
	"runtime/debug"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/koreannum/core/handler"
	"github.com/dmitrymomot/koreannum/core/logger"
)

type mux[C handler.Context] struct {
	mu           sync.RWMutex
	serveMux     *http.ServeMux
	routes       []Route
	methods      map[string][]string // pattern -> registered methods
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	log          loggerFunc
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		serveMux:     http.NewServeMux(),
		methods:      map[string][]string{},
		errorHandler: defaultErrorHandler[C],
		log:          nopLogger,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.serveMux.HandleFunc("/", m.fallback)

	return m
}

func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.serveMux.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.Handle(http.MethodGet, pattern, h)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.Handle(http.MethodPost, pattern, h)
}

func (m *mux[C]) Handle(method, pattern string, h handler.HandlerFunc[C]) {
	if h == nil {
		panic(ErrNilHandler)
	}
	if !strings.HasPrefix(pattern, "/") {
		panic(ErrInvalidPattern)
	}
	method = strings.ToUpper(method)

	m.mu.Lock()
	m.routes = append(m.routes, Route{Method: method, Pattern: pattern})
	m.methods[pattern] = append(m.methods[pattern], method)
	m.mu.Unlock()

	m.serveMux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		m.dispatch(w, r, h)
	})
}

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) Routes() []Route {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.routes)
}

// fallback receives every request no registered pattern matched.
func (m *mux[C]) fallback(w http.ResponseWriter, r *http.Request) {
	m.dispatch(w, r, func(ctx C) handler.Response {
		if allowed := m.allowed(r); len(allowed) > 0 {
			return func(w http.ResponseWriter, _ *http.Request) error {
				w.Header().Set("Allow", strings.Join(allowed, ", "))
				return ErrMethodNotAllowed
			}
		}
		return func(http.ResponseWriter, *http.Request) error {
			return ErrNotFound
		}
	})
}

// allowed lists methods registered for patterns matching the request path.
func (m *mux[C]) allowed(r *http.Request) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var methods []string
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		if method == r.Method {
			continue
		}
		probe := r.Clone(r.Context())
		probe.Method = method
		if _, pattern := m.serveMux.Handler(probe); pattern != "" && pattern != "/" {
			methods = append(methods, method)
		}
	}
	return methods
}

func (m *mux[C]) dispatch(w http.ResponseWriter, r *http.Request, h handler.HandlerFunc[C]) {
	ww := newResponseWriter(w)
	ctx := m.newContext(ww, r)

	defer func() {
		if p := recover(); p != nil {
			err := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				m.log(r, "panic after response written", logger.Error(err), logger.Path(r.URL.Path))
				return
			}
			m.errorHandler(ctx, err)
		}
	}()

	m.mu.RLock()
	chain := handler.Chain(h, m.middlewares...)
	m.mu.RUnlock()

	resp := chain(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := resp(ww, ctx.Request()); err != nil {
		if ww.Written() {
			m.log(r, "response error after write", logger.Error(err), logger.Path(r.URL.Path))
			return
		}
		m.errorHandler(ctx, err)
	}
}
