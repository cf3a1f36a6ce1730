package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func collectFields(cfg Config, c *fiber.Ctx, start, end time.Time) log.Fields {
	f := make(log.Fields)
	for _, tag := range cfg.Tags {
		switch tag {
		case TagMethod:
			f[TagMethod] = c.Method()
		case TagPath:
			f[TagPath] = c.Path()
		case TagStatus:
			f[TagStatus] = c.Response().StatusCode()
		case TagLatency:
			f[TagLatency] = end.Sub(start).Milliseconds()
		case TagIP:
			f[TagIP] = c.IP()
		case RequestID:
			if id := c.Get(fiber.HeaderXRequestID); id != "" {
				f[RequestID] = id
			}
		}
	}
	return f
}

// New creates a request logging middleware on top of logrus.
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		end := time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}
		fields := collectFields(cfg, c, start, end)
		var entry *log.Entry
		if cfg.Logger == nil {
			entry = log.WithFields(fields)
		} else {
			entry = cfg.Logger.WithFields(fields)
		}
		if c.Response().StatusCode() >= 300 {
			entry.Warn("api request")
		} else {
			entry.Info("api request")
		}
		return err
	}
}
