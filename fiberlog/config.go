package fiberlog

import (
	log "github.com/sirupsen/logrus"
)

const (
	TagMethod  = "method"
	TagPath    = "path"
	TagStatus  = "status"
	TagLatency = "latency_ms"
	TagIP      = "ip"
	RequestID  = "request_id"
)

type Config struct {
	Logger *log.Logger
	Tags   []string
}

var ConfigDefault = Config{
	Tags: []string{TagMethod, TagPath, TagStatus, TagLatency},
}
