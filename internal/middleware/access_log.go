package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

// AccessLog writes one entry per request once the response is final. Errors
// returned down the chain are rendered through the app's ErrorHandler first,
// so the logged status is the one the client receives.
func AccessLog(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		msg := fmt.Sprintf("%s %s %d %s", c.Method(), c.OriginalURL(), status, fiberutils.StatusMessage(status))
		if hasBody(c.Method()) {
			msg += " - Body: " + string(c.Body())
		}

		entry := log.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    time.Since(start).String(),
			"ip":         c.IP(),
			"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		})
		if status >= fiber.StatusBadRequest {
			entry.Error(msg)
		} else {
			entry.Info(msg)
		}
		return nil
	}
}

func hasBody(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		return true
	}
	return false
}
