package server

import (
	"fmt"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/log"
)

// WebLogger implements core.Logger by tagging each message with the id of
// the request that produced it
type WebLogger struct {
	requestID string
	logger    log.Logger
}

// NewWebLogger creates a new web logger for a specific request
func NewWebLogger(requestID string, logger log.Logger) core.Logger {
	return &WebLogger{
		requestID: requestID,
		logger:    logger,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	wl.logger.Infof("[%s] %s", wl.requestID, message)
}
