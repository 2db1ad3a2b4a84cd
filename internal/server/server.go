// Package server exposes the latest validated prices over HTTP. It is a
// collaborator of the codec: the codec stays pure, the server owns the
// clock, the store and the registry constraints.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/danmuck/feedctl/internal/config"
	"github.com/danmuck/feedctl/internal/feed"
	"github.com/danmuck/feedctl/internal/observability"
	"github.com/danmuck/feedctl/internal/store"
)

// registeredFeed is one configured feed with its id resolved.
type registeredFeed struct {
	name     string
	id       feed.FeedID
	maxAge   uint64
	required feed.TrustLevel
}

type Server struct {
	addr    string
	store   *store.Store
	log     zerolog.Logger
	router  *gin.Engine
	feeds   map[string]registeredFeed
	started time.Time
	now     func() int64
}

// New resolves the registry and wires the routes. The gin engine runs in
// release mode; request logging goes through the shared logger.
func New(cfg config.WatchConfig, st *store.Store, log zerolog.Logger) (*Server, error) {
	feeds := make(map[string]registeredFeed, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		id, err := f.FeedID()
		if err != nil {
			return nil, err
		}
		feeds[f.Name] = registeredFeed{
			name:     f.Name,
			id:       id,
			maxAge:   f.MaxAgeSeconds,
			required: f.RequiredTrust(),
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), observability.RequestLogger(log))

	s := &Server{
		addr:    cfg.Addr,
		store:   st,
		log:     log,
		router:  router,
		feeds:   feeds,
		started: time.Now(),
		now:     func() int64 { return time.Now().Unix() },
	}
	s.registerRoutes()
	return s, nil
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.log.Info().Str("addr", s.addr).Int("feeds", len(s.feeds)).Msg("serving")
	return s.router.Run(s.addr)
}
