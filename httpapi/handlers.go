package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pointset/distmat/config"
	"github.com/pointset/distmat/eval"
	"github.com/pointset/distmat/models"
	"github.com/rs/zerolog/log"
)

// ---------------------------

type DistanceRequest struct {
	// Metric name, falls back to the configured default, then euclidean.
	Type string `json:"type"`
	// Exactly two vectors for the scalar mode.
	Vectors []models.Vector `json:"vectors"`
	// A single matrix for the pairwise mode.
	Matrix models.Matrix `json:"matrix"`
}

type DistanceResponse struct {
	Metric   string        `json:"metric"`
	Distance *float64      `json:"distance,omitempty"`
	Matrix   models.Matrix `json:"matrix,omitempty"`
}

func distanceHandler(c *gin.Context) {
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// ---------------------------
	metricName := req.Type
	if metricName == "" {
		metricName = config.Cfg.DefaultType
	}
	var opts []eval.Option
	if metricName != "" {
		opts = append(opts, eval.Option{Name: models.OptionType, Value: metricName})
	}
	op, err := eval.NewDistanceOperation(opts...)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// ---------------------------
	// Hand the operands over as-is, the operation validates the call shape.
	if req.Matrix != nil && req.Vectors != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide either vectors or a matrix, not both"})
		return
	}
	var operands []any
	if req.Matrix != nil {
		operands = []any{req.Matrix}
	} else {
		for _, v := range req.Vectors {
			operands = append(operands, v)
		}
	}
	result, err := op.Evaluate(operands...)
	if err != nil {
		if errors.Is(err, eval.ErrInvalidOperand) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		log.Error().Err(err).Msg("Evaluate failed")
		return
	}
	// ---------------------------
	resp := DistanceResponse{Metric: op.Metric()}
	switch res := result.(type) {
	case float64:
		resp.Distance = &res
	case models.Matrix:
		resp.Matrix = res
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		log.Error().Interface("result", result).Msg("unexpected evaluate result")
		return
	}
	c.JSON(http.StatusOK, resp)
}
