package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/textops/recontext/internal/core"
)

type Server struct {
	Pipeline *core.Pipeline
}

func New(pipeline *core.Pipeline) *Server {
	return &Server{Pipeline: pipeline}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.StaticFile("/", "./web/index.html")
	r.GET("/api/health", s.Health)
	r.POST("/api/reconstruct", s.Reconstruct)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "API is running"})
}

// ReconstructRequest uses a pointer so an absent "text" key is
// distinguishable from an empty string.
type ReconstructRequest struct {
	Text *string `json:"text"`
}

func (s *Server) Reconstruct(c *gin.Context) {
	reqID := uuid.NewString()

	var req ReconstructRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No text provided"})
		return
	}

	result, err := s.Pipeline.Process(c.Request.Context(), *req.Text)
	if err != nil {
		log.Printf("[%s] reconstruct failed: %v", reqID, err)

		var perr *core.PipelineError
		if errors.As(err, &perr) && perr.Stage == core.StageValidation {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Text cannot be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	log.Printf("[%s] reconstructed %d chars, %d sources", reqID, len(result.ReconstructedText), len(result.Sources))
	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"original_text":      result.OriginalText,
		"reconstructed_text": result.ReconstructedText,
		"sources":            result.Sources,
	})
}
