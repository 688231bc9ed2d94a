package http

import (
	"net/http"

	domain "loanintake-backend/internal/domain/application"
	"loanintake-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ store domain.Store }

func NewReportHandler(store domain.Store) *ReportHandler { return &ReportHandler{store: store} }

// Export takes a fresh snapshot and hands it to the report helper. The
// rendered document is served inline; clients print or save it themselves.
func (h *ReportHandler) Export(c echo.Context) error {
	snapshot, err := h.store.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load applications"})
	}
	doc, err := report.Generate(snapshot)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to render report"})
	}
	return c.HTMLBlob(http.StatusOK, doc)
}
