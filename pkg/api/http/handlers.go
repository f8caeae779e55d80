package http

import (
	"net/http"

	"github.com/aescanero/awesomeness/internal/prediction"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleUsage answers the root route with a usage hint
func (s *Server) handleUsage(c *gin.Context) {
	c.String(http.StatusOK, "%s", prediction.Usage)
}

// handlePredict answers with a fresh prediction for the city segment
func (s *Server) handlePredict(c *gin.Context) {
	city := c.Param("city")

	p := s.predictor.Predict(city)
	if s.metrics != nil {
		s.metrics.RecordPrediction(p.Percentage)
	}

	s.logger.Debug("prediction served",
		zap.String("city", p.City),
		zap.Int("percentage", p.Percentage),
		zap.String("request_id", c.GetString(requestIDKey)))

	c.String(http.StatusOK, "%s", p.Message())
}
