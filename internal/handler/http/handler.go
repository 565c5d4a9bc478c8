// Package http implements the HTTP transport layer of the development
// gateway. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, logging and tracing concerns
// are all handled at this layer before requests reach the registries.
package http

import (
	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/service"
	"github.com/veilvault/veilvault/internal/store"
)

type Handler struct {
	auth    *service.AuthService
	anchors store.AnchorRegistry
	blobs   *store.FileBlobStore
	version string

	logger *logger.Logger
}

func NewHandler(auth *service.AuthService, anchors store.AnchorRegistry, blobs *store.FileBlobStore, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		auth:    auth,
		anchors: anchors,
		blobs:   blobs,
		version: version,
		logger:  logger,
	}
}
