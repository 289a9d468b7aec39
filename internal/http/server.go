// Package http exposes sessions over HTTP: server-rendered pages for the
// browser and a JSON API with a server-sent event stream.
package http

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"health-chat/internal/i18n"
	"health-chat/internal/identity"
	"health-chat/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	maxBodyBytes      = 64 << 10
	defaultKeepAlive  = 15 * time.Second
	defaultAPIOrigins = "*"
)

// Options configures a Server.
type Options struct {
	AllowedOrigins []string
	CookieSecure   bool
	Log            *slog.Logger
	// KeepAlive is the interval of comment frames on the event stream.
	KeepAlive time.Duration
}

// Server bundles together the dependencies required by HTTP handlers.  It
// implements http.Handler so it can be passed to an http.Server.
type Server struct {
	Sessions  *session.Manager
	Templates *template.Template

	log       *slog.Logger
	validate  *validator.Validate
	keepAlive time.Duration
	router    chi.Router
}

// NewServer constructs a Server and its routes.  Templates are embedded.
func NewServer(sessions *session.Manager, opts Options) (*Server, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if opts.KeepAlive <= 0 {
		opts.KeepAlive = defaultKeepAlive
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{defaultAPIOrigins}
	}

	s := &Server{
		Sessions:  sessions,
		Templates: tmpl,
		log:       opts.Log,
		validate:  validator.New(),
		keepAlive: opts.KeepAlive,
	}
	s.router = s.routes(opts)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(opts Options) chi.Router {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.RequestLogger(requestLogger{log: s.log}))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(identity.Middleware(opts.CookieSecure))

	// Pages.
	r.Get("/", s.handleIndex)
	r.Post("/start", s.handleStartForm)
	r.Post("/messages", s.handleMessageForm)
	r.Post("/quick-reply", s.handleQuickReplyForm)
	r.Get("/language", s.handleLanguagePage)
	r.Post("/language", s.handleLanguageForm)
	r.Get("/start-over", s.handleStartOverPage)
	r.Post("/start-over", s.handleStartOverForm)
	r.Get("/help", s.handleHelpPage)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Accept-Language"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		r.Route("/session", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Post("/start", s.handleStart)
			r.Put("/language", s.handleSetLanguage)
			r.Post("/messages", s.handleSendMessage)
			r.Post("/reset", s.handleReset)
			r.Get("/events", s.handleEvents)
		})
		r.Get("/languages", s.handleLanguages)
		r.Get("/strings/{code}", s.handleStrings)
		r.Get("/help", s.handleHelp)
	})

	return r
}

// session returns the Store of the requesting device.  A device seen for the
// first time starts in the language its browser prefers.
func (s *Server) session(r *http.Request) *session.Store {
	ctx := r.Context()
	return s.Sessions.Session(ctx, identity.DeviceIDFromContext(ctx), i18n.Match(r.Header.Get("Accept-Language")))
}
