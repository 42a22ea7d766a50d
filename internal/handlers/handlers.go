package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zainabhax0r-dev/facescan-pro/internal/attendance"
	"github.com/zainabhax0r-dev/facescan-pro/internal/repository"
	"github.com/zainabhax0r-dev/facescan-pro/internal/session"
)

// SessionManager is the session surface the HTTP layer drives.
type SessionManager interface {
	StartEnroll(ctx context.Context, identityID, device string) (session.Status, error)
	StartScan(ctx context.Context, device string) (session.Status, error)
	OfferFrame(id string, data []byte, capturedAt time.Time) error
	Get(id string) (session.Status, error)
	Stop(id string) (session.Status, error)
}

// AttendanceLister reads back recorded attendance events.
type AttendanceLister interface {
	ListBetween(ctx context.Context, start, end time.Time) ([]attendance.Event, error)
}

// MetricsSource aggregates the recognition audit trail.
type MetricsSource interface {
	AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error)
}

// MaxUploadSize caps a single frame upload.
const MaxUploadSize = 5 << 20

var allowedFrameTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

type startRequest struct {
	IdentityID string `json:"identity_id"`
	Device     string `json:"device"`
}

// RegisterRoutes wires the HTTP handlers to the Gin router. Everything
// under /v1 goes through the auth middleware; /health does not.
func RegisterRoutes(router *gin.Engine, sessions SessionManager, events AttendanceLister, metrics MetricsSource, policy attendance.DayPolicy, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware)
	}

	v1.POST("/sessions/enroll", func(c *gin.Context) {
		var req startRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.IdentityID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "identity_id is required"})
			return
		}
		if req.Device == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "device is required"})
			return
		}

		status, err := sessions.StartEnroll(c.Request.Context(), req.IdentityID, req.Device)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, status)
	})

	v1.POST("/sessions/scan", func(c *gin.Context) {
		var req startRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Device == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "device is required"})
			return
		}

		status, err := sessions.StartScan(c.Request.Context(), req.Device)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, status)
	})

	v1.POST("/sessions/:id/frames", func(c *gin.Context) {
		file, err := c.FormFile("frame")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "frame file is required"})
			return
		}
		if file.Size > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "frame exceeds upload limit"})
			return
		}
		if ct := file.Header.Get("Content-Type"); ct != "" && !allowedFrameTypes[ct] {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "frame must be jpeg or png"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open frame"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read frame"})
			return
		}

		if err := sessions.OfferFrame(c.Param("id"), data, time.Now()); err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
	})

	v1.GET("/sessions/:id", func(c *gin.Context) {
		status, err := sessions.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, status)
	})

	v1.DELETE("/sessions/:id", func(c *gin.Context) {
		status, err := sessions.Stop(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, status)
	})

	v1.GET("/attendance", func(c *gin.Context) {
		loc := policy.Location
		if loc == nil {
			loc = time.UTC
		}

		day := time.Now().In(loc)
		if raw := c.Query("day"); raw != "" {
			parsed, err := time.ParseInLocation("2006-01-02", raw, loc)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "day must be YYYY-MM-DD"})
				return
			}
			day = parsed
		}

		// Anchor at the rollover hour so Window never backs up a day.
		anchor := time.Date(day.Year(), day.Month(), day.Day(), policy.RolloverHour, 0, 0, 0, loc)
		start, end := policy.Window(anchor)

		list, err := events.ListBetween(c.Request.Context(), start, end)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"day":    anchor.Format("2006-01-02"),
			"events": list,
			"count":  len(list),
		})
	})

	v1.GET("/metrics/summary", func(c *gin.Context) {
		agg, err := metrics.AggregateMetrics(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		matchRate := 0.0
		if agg.TotalCount > 0 {
			matchRate = float64(agg.SuccessCount) / float64(agg.TotalCount)
		}
		c.JSON(http.StatusOK, gin.H{
			"total_scans":        agg.TotalCount,
			"matched_scans":      agg.SuccessCount,
			"match_rate":         matchRate,
			"average_similarity": agg.AverageSimilarity,
		})
	})
}
