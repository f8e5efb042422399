package middleware

import (
	"supermind/config"
	"supermind/pkg/log"
)

type Middleware struct {
	l           log.Logger
	webConfig   config.WebConfig
	rateLimiter *rateLimiter
}

func New(l log.Logger, webConfig config.WebConfig) Middleware {
	return Middleware{
		l:           l,
		webConfig:   webConfig,
		rateLimiter: newRateLimiter(webConfig.RateLimitPerMin),
	}
}
