package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/airgraph/airgraph/internal/config"
	"github.com/airgraph/airgraph/internal/core"
	"github.com/airgraph/airgraph/internal/core/model"
	"github.com/airgraph/airgraph/internal/core/validate"
	"github.com/airgraph/airgraph/internal/driver"
	"github.com/airgraph/airgraph/internal/llm"
)

type Server struct {
	Engine *core.Engine
	Driver driver.GraphDriver
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Falling back to environment configuration", cfgPath, err)
		cfg = &config.Config{}
		cfg.Prompts.Classify = config.DefaultClassifyPrompt
	}

	// Environment overrides
	if v := os.Getenv("NEO4J_URI"); v != "" {
		cfg.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USER"); v != "" {
		cfg.Neo4j.User = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		cfg.Neo4j.Password = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	if cfg.Neo4j.URI == "" {
		cfg.Neo4j.URI = "bolt://localhost:7687"
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
		cfg.LLM.Model = "gpt-oss:latest"
		cfg.LLM.BaseURL = "http://localhost:11434"
	}

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}

	classifier, err := llm.NewClassifier(context.Background(), cfg.LLM, cfg.Prompts.Classify)
	if err != nil {
		log.Fatalf("Failed to initialize classifier: %v", err)
	}

	engine := core.NewEngine(d, classifier)
	if err := engine.BuildConstraints(context.Background()); err != nil {
		log.Printf("Warning: failed to build constraints: %v", err)
	}

	return &Server{
		Engine: engine,
		Driver: d,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/reviews", s.IngestReview)
	r.GET("/dashboard/aspects", s.AspectDistribution)
	r.GET("/dashboard/latest", s.LatestReview)
	r.GET("/health", s.Health)

	return r
}

type IngestRequest struct {
	model.Fields
	ReviewText string `json:"review_text"`
}

func (s *Server) IngestReview(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := s.Engine.IngestReview(c.Request.Context(), req.Fields, req.ReviewText)
	if err != nil {
		switch {
		case errors.Is(err, validate.ErrMissingReviewText):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Review text is required"})
		case errors.Is(err, core.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Graph store unavailable"})
		default:
			log.Printf("Failed to ingest review: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"review_id": result.ReviewID,
		"sentiment": result.Sentiment,
	})
}

func (s *Server) AspectDistribution(c *gin.Context) {
	counts, err := s.Engine.AspectDistribution(c.Request.Context())
	if err != nil {
		log.Printf("Failed to aggregate aspects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load aspect distribution"})
		return
	}

	rows := make([]gin.H, 0, len(counts))
	for _, row := range counts {
		rows = append(rows, gin.H{
			"aspect":   row.DisplayName(),
			"category": row.Category,
			"count":    row.Count,
		})
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (s *Server) LatestReview(c *gin.Context) {
	latest, err := s.Engine.LatestReview(c.Request.Context())
	if err != nil {
		log.Printf("Failed to load latest review: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load latest review"})
		return
	}

	if latest == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}

	scores := make(map[string]gin.H, len(latest.Scores))
	for aspect, score := range latest.Scores {
		status := "N/A"
		if category, ok := model.Categorize(score); ok {
			status = string(category)
		}
		scores[aspect] = gin.H{"score": score, "status": status}
	}

	c.JSON(http.StatusOK, gin.H{
		"found":          true,
		"passenger_name": latest.PassengerName,
		"scores":         scores,
	})
}

func (s *Server) Health(c *gin.Context) {
	if s.Driver == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "store unavailable"})
		return
	}
	if _, err := s.Driver.ExecuteQuery(c.Request.Context(), "RETURN 1", nil); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "store unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
