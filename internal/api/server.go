package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yt-prospector/internal/enrich"
	"github.com/yt-prospector/internal/models"
)

// maxSearchResults caps a single enrichment batch; the YouTube search API
// returns at most 50 results per call.
const maxSearchResults = 50

// Server represents the API server
type Server struct {
	router   *gin.Engine
	pipeline *enrich.Pipeline
	db       *models.Database
}

// NewServer creates a new API server. The database may be nil, in which case
// run history endpoints are disabled.
func NewServer(pipeline *enrich.Pipeline, db *models.Database) *Server {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		router:   router,
		pipeline: pipeline,
		db:       db,
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	s.router.POST("/enrich", s.runEnrichment)
	s.router.GET("/reports", s.listReports)
}

type enrichRequest struct {
	Keyword    string `json:"keyword" binding:"required"`
	MaxResults int64  `json:"max_results"`
}

// runEnrichment handles one enrichment batch and returns its report. The batch
// runs synchronously within the request, like a form submission.
func (s *Server) runEnrichment(c *gin.Context) {
	var req enrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if req.MaxResults <= 0 {
		req.MaxResults = 10
	}
	if req.MaxResults > maxSearchResults {
		req.MaxResults = maxSearchResults
	}

	log.Printf("Searching YouTube for: %s", req.Keyword)
	report := s.pipeline.Run(c.Request.Context(), req.Keyword, req.MaxResults)

	if s.db != nil {
		if err := s.db.StoreRun(report); err != nil {
			log.Printf("failed to store run report: %v", err)
		}
	}

	c.JSON(http.StatusOK, report)
}

// listReports returns the most recent batch reports.
func (s *Server) listReports(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "run history is not configured",
		})
		return
	}

	runs, err := s.db.ListRuns(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, runs)
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
