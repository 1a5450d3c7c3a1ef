package middleware

import (
	"strconv"
	"time"

	"sakila-backend/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request count and latency per route pattern. It must wrap
// AccessLog so the status it sees is already final.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		endpoint := c.Route().Path
		method := c.Method()
		metrics.RequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(c.Response().StatusCode())).Inc()
		metrics.RequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
		return err
	}
}
