package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
	"github.com/oswinp/curiodb/internal/importer"
	"github.com/oswinp/curiodb/internal/validate"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps carries everything the HTTP surface needs. Every repository is wired
// explicitly; there is no service locator.
type Deps struct {
	Log    zerolog.Logger
	Config *domain.Config
	DB     Pinger

	FilmRepo domain.FilmRepository
	BookRepo domain.BookRepository
	ListRepo domain.ListRepository

	WatchRepo          domain.ResourceRepository[domain.Watch]
	MusicRepo          domain.ResourceRepository[domain.Music]
	FilmCollectionRepo domain.ResourceRepository[domain.FilmCollection]
	BookCollectionRepo domain.ResourceRepository[domain.BookCollection]
	GameCollectionRepo domain.ResourceRepository[domain.GameCollection]
	WardrobeRepo       domain.ResourceRepository[domain.Wardrobe]
	ArtRepo            domain.ResourceRepository[domain.Art]
	ExtrasCategoryRepo domain.ResourceRepository[domain.ExtrasCategory]
	ExtraRepo          domain.ResourceRepository[domain.Extra]
	InstrumentRepo     domain.ResourceRepository[domain.Instrument]
	PerformanceRepo    domain.ResourceRepository[domain.Performance]

	Importer importer.Service
}

type Server struct {
	log       zerolog.Logger
	config    *domain.Config
	deps      Deps
	validator *validate.Validator
}

func NewServer(deps Deps) *Server {
	return &Server{
		log:       deps.Log.With().Str("module", "api").Logger(),
		config:    deps.Config,
		deps:      deps,
		validator: validate.New(),
	}
}

// Handler builds the gin engine with every route registered. Exposed
// separately from Open so tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	api := engine.Group("/api")

	api.GET("/healthz", func(c *gin.Context) {
		if err := s.deps.DB.Ping(c.Request.Context()); err != nil {
			s.log.Error().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.registerFilmRoutes(api)
	s.registerBookRoutes(api)
	s.registerListRoutes(api)

	registerResource(s, api, "watches", s.deps.WatchRepo)
	registerResource(s, api, "music", s.deps.MusicRepo)
	registerResource(s, api, "film-collections", s.deps.FilmCollectionRepo)
	registerResource(s, api, "book-collections", s.deps.BookCollectionRepo)
	registerResource(s, api, "game-collections", s.deps.GameCollectionRepo)
	registerResource(s, api, "wardrobe", s.deps.WardrobeRepo)
	registerResource(s, api, "art", s.deps.ArtRepo)
	registerResource(s, api, "extras-categories", s.deps.ExtrasCategoryRepo)
	registerResource(s, api, "extras", s.deps.ExtraRepo)
	registerResource(s, api, "instruments", s.deps.InstrumentRepo)
	registerResource(s, api, "performances", s.deps.PerformanceRepo)

	return engine
}

// Open blocks serving HTTP on the configured listen address.
func (s *Server) Open() error {
	s.log.Info().Str("addr", s.config.ListenAddr).Msg("starting http server")
	return http.ListenAndServe(s.config.ListenAddr, s.Handler())
}
