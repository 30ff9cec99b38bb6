// Package server exposes the export artifacts over HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/m8811163008/visitor-desing-pattern/model"
	"github.com/m8811163008/visitor-desing-pattern/service"
)

// Handler contains the HTTP handlers serving a single published media tree.
type Handler struct {
	root   *model.Directory
	logger service.Logger
}

// NewHandler creates a handler for the given frozen tree.
func NewHandler(root *model.Directory, logger service.Logger) *Handler {
	return &Handler{root: root, logger: logger}
}

// SetupRouter creates and configures the echo router with all routes and
// middleware.
func SetupRouter(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())

	e.GET("/api/exporters", h.HandleExporters)
	e.GET("/api/export/:format", h.HandleExport)

	return e
}

// HandleExporters handles GET /api/exporters.
// Returns the available formats with the human label of each exporter.
func (h *Handler) HandleExporters(c echo.Context) error {
	type exporterInfo struct {
		Format string `json:"format"`
		Title  string `json:"title"`
	}

	infos := make([]exporterInfo, 0, len(service.Formats()))
	for _, format := range service.Formats() {
		exporter, err := service.ExporterByFormat(format)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": err.Error(),
			})
		}
		infos = append(infos, exporterInfo{Format: format, Title: exporter.Title()})
	}

	return c.JSON(http.StatusOK, infos)
}

// HandleExport handles GET /api/export/:format.
// Serves the full-tree report as plain text.
func (h *Handler) HandleExport(c echo.Context) error {
	format := c.Param("format")

	exporter, err := service.ExporterByFormat(format)
	if err != nil {
		if errors.Is(err, service.ErrUnknownFormat) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	h.logger.Debug("export requested", "format", format)
	return c.String(http.StatusOK, h.root.Accept(exporter))
}
