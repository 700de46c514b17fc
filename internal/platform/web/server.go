// Package web exposes a running session over HTTP: JSON status, action
// entry points, the current frame as PNG and a websocket feed of status
// changes.
package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/draw/raster"
	"github.com/vovakirdan/waitroom/internal/registry"
	"github.com/vovakirdan/waitroom/internal/scale"
)

// maxPixelRatio caps the dpr query parameter of the frame endpoint.
const maxPixelRatio = 4

// Actions are the lifecycle entry points. Implementations hand them to the
// goroutine that owns the controller.
type Actions interface {
	SelectGame(kind core.GameKind)
	Start()
	Retry()
	ReturnToMenu()
}

// Server serves one session.
type Server struct {
	hub      *Hub
	actions  Actions
	cfg      config.Config
	logger   *log.Logger
	engine   *gin.Engine
	upgrader websocket.Upgrader
}

// New builds the router.
func New(hub *Hub, actions Actions, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		hub:     hub,
		actions: actions,
		cfg:     cfg,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests)

	api := r.Group("/api")
	api.GET("/games", s.games)
	api.GET("/session", s.session)
	api.POST("/select/:game", s.selectGame)
	api.POST("/start", s.action(actions.Start))
	api.POST("/retry", s.action(actions.Retry))
	api.POST("/menu", s.action(actions.ReturnToMenu))
	api.GET("/frame.png", s.frame)
	api.GET("/ws", s.stream)

	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Debug("http",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"took", time.Since(start),
	)
}

type gameInfo struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Rules string `json:"rules"`
}

func (s *Server) games(c *gin.Context) {
	list := registry.List()
	out := make([]gameInfo, 0, len(list))
	for _, g := range list {
		out = append(out, gameInfo{Kind: g.Kind.String(), Title: g.Title, Icon: g.Icon, Rules: g.Rules})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) session(c *gin.Context) {
	c.JSON(http.StatusOK, ViewOf(s.hub.Snapshot().Session))
}

func (s *Server) selectGame(c *gin.Context) {
	kind, ok := core.ParseGameKind(c.Param("game"))
	if !ok || !registry.Exists(kind) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game " + strconv.Quote(c.Param("game"))})
		return
	}
	s.actions.SelectGame(kind)
	c.JSON(http.StatusAccepted, gin.H{"accepted": kind.String()})
}

func (s *Server) action(fn func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		fn()
		c.Status(http.StatusAccepted)
	}
}

func (s *Server) frame(c *gin.Context) {
	snap := s.hub.Snapshot()
	if len(snap.Frame) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	dpr := 1.0
	if q := c.Query("dpr"); q != "" {
		v, err := strconv.ParseFloat(q, 64)
		if err != nil || v <= 0 || v > maxPixelRatio {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dpr must be within (0, 4]"})
			return
		}
		dpr = v
	}

	b := snap.Bounds
	if b.W <= 0 || b.H <= 0 {
		b = core.Bounds{W: s.cfg.Surface.Width, H: s.cfg.Surface.Height}
	}
	canvas := raster.New(b.W, b.H, dpr)
	canvas.SetBackground(s.cfg.Theme.Palette().Background)
	if _, ok := scale.Setup(canvas); !ok {
		c.Status(http.StatusNoContent)
		return
	}
	snap.Frame.Replay(canvas)

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "no-store")
	c.Status(http.StatusOK)
	if err := canvas.EncodePNG(c.Writer); err != nil {
		s.logger.Warn("could not encode frame", "error", err)
	}
}

func (s *Server) stream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	cl, first := s.hub.subscribe()
	defer s.hub.unsubscribe(cl)

	if err := conn.WriteMessage(websocket.TextMessage, first); err != nil {
		return
	}

	// The reader only notices the peer going away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case data := <-cl.send:
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}
