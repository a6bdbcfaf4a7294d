// Package device emulates the hardware that receives movement codes, so the
// game can be played end to end without the real board on the network.
package device

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/dino-run/internal/core"
)

// Move is one received command.
type Move struct {
	Direction core.MoveCode `json:"direction"`
	At        time.Time     `json:"at"`
	Remote    string        `json:"remote"`
}

// Server records moves posted to /move.
type Server struct {
	logger *log.Logger
	now    func() time.Time
	limit  int

	mu    sync.Mutex
	moves []Move
}

// DefaultHistory is how many moves are kept when no limit is given.
const DefaultHistory = 1000

// NewServer creates an emulator keeping at most limit moves.
func NewServer(logger *log.Logger, limit int) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if limit <= 0 {
		limit = DefaultHistory
	}
	return &Server{
		logger: logger,
		now:    time.Now,
		limit:  limit,
	}
}

// Router builds the gin engine serving the emulator routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// The real device listens on /move.
	router.POST("/move", s.handleMove)
	router.GET("/moves", s.handleMoves)

	return router
}

func (s *Server) handleMove(c *gin.Context) {
	code, err := core.ParseMoveCode(c.PostForm("direction"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m := Move{Direction: code, At: s.now(), Remote: c.ClientIP()}
	s.record(m)
	s.logger.Info("move", "direction", code, "remote", m.Remote)

	c.JSON(http.StatusOK, gin.H{"direction": code})
}

func (s *Server) handleMoves(c *gin.Context) {
	c.JSON(http.StatusOK, s.Moves())
}

func (s *Server) record(m Move) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.moves = append(s.moves, m)
	if over := len(s.moves) - s.limit; over > 0 {
		s.moves = append([]Move(nil), s.moves[over:]...)
	}
}

// Moves returns a copy of the recorded history, oldest first.
func (s *Server) Moves() []Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Move{}, s.moves...)
}

// ListenAndServe runs the emulator on addr until the server fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("device emulator listening", "addr", addr)
	return s.Router().Run(addr)
}
