package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/danmuck/feedctl/internal/feed"
	"github.com/danmuck/feedctl/internal/observability"
)

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/feeds", s.handleFeeds)
	s.router.GET("/price/:feed", s.handlePrice)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  time.Since(s.started).String(),
		"feeds":   len(s.feeds),
		"updates": s.store.Len(),
	})
}

func (s *Server) handleFeeds(c *gin.Context) {
	out := make([]gin.H, 0, len(s.feeds))
	for _, f := range s.feeds {
		out = append(out, gin.H{
			"name":            f.name,
			"id":              f.id.String(),
			"max_age_seconds": f.maxAge,
			"required_trust":  f.required.String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"feeds": out})
}

func (s *Server) handlePrice(c *gin.Context) {
	name := c.Param("feed")
	f, ok := s.feeds[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown feed"})
		return
	}

	update, ok := s.store.Latest(f.id)
	if !ok {
		observability.RecordQueryFailure(f.name, "no_update")
		c.JSON(http.StatusNotFound, gin.H{"error": "no update for feed"})
		return
	}

	price, err := update.PriceNoOlderThanWithTrust(s.now(), f.maxAge, &f.id, f.required)
	if err != nil {
		reason := failureReason(err)
		observability.RecordQueryFailure(f.name, reason)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": reason})
		return
	}

	observability.RecordQueryServed(f.name)
	c.JSON(http.StatusOK, gin.H{
		"feed":         f.name,
		"id":           f.id.String(),
		"price":        price.Price,
		"conf":         price.Conf,
		"exponent":     price.Exponent,
		"publish_time": price.PublishTime,
		"scaled_price": scaled(price.Price, price.Exponent),
		"scaled_conf":  scaledUint(price.Conf, price.Exponent),
		"posted_slot":  update.PostedSlot,
		"trust":        update.TrustLevel.String(),
	})
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, feed.ErrPriceTooOld):
		return "price_too_old"
	case errors.Is(err, feed.ErrMismatchedFeedID):
		return "mismatched_feed_id"
	case errors.Is(err, feed.ErrInsufficientVerificationLevel):
		return "insufficient_verification_level"
	default:
		return "error"
	}
}

// scaled applies the decimal exponent for display. Scaling is deliberately a
// caller concern; the codec hands out unscaled components.
func scaled(v int64, exponent int32) string {
	return decimal.NewFromInt(v).Shift(exponent).String()
}

func scaledUint(v uint64, exponent int32) string {
	return decimal.NewFromUint64(v).Shift(exponent).String()
}
