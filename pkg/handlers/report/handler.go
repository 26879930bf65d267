// Package report exposes the monthly report over HTTP in its three
// representations: HTML page, PDF attachment and xlsx attachment.
package report

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tienda-tools/informe/pkg/models/domain"
	reportsvc "github.com/tienda-tools/informe/pkg/services/report"
)

// PageRenderer writes a report as a streamed HTML page.
type PageRenderer interface {
	Render(w io.Writer, data *domain.ReportData) error
}

// DocumentRenderer produces a report as a downloadable byte document.
type DocumentRenderer interface {
	Render(data *domain.ReportData) ([]byte, error)
}

type Handler struct {
	composer reportsvc.Composer
	page     PageRenderer
	pdf      DocumentRenderer
	excel    DocumentRenderer
}

func NewHandler(composer reportsvc.Composer, page PageRenderer, pdf, excel DocumentRenderer) *Handler {
	return &Handler{composer: composer, page: page, pdf: pdf, excel: excel}
}

// GetHTML serves GET /informe. The mes parameter defaults to the current
// month.
func (h *Handler) GetHTML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	mes := r.URL.Query().Get("mes")
	if mes == "" {
		mes = time.Now().Format("2006-01")
	}

	data, err := h.composer.Compose(ctx, mes)
	if err != nil {
		h.writeComposeError(w, logger, mes, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Render(w, data); err != nil {
		// Headers are already out; all we can do is log.
		logger.Error().Err(err).Str("mes", mes).Msg("failed to render report page")
	}
}

// GetPDF serves GET /informe/pdf. The mes parameter is required.
func (h *Handler) GetPDF(w http.ResponseWriter, r *http.Request) {
	h.getDocument(w, r, h.pdf, "application/pdf", "pdf")
}

// GetExcel serves GET /informe/xlsx. The mes parameter is required.
func (h *Handler) GetExcel(w http.ResponseWriter, r *http.Request) {
	h.getDocument(w, r,
		h.excel, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx")
}

func (h *Handler) getDocument(
	w http.ResponseWriter,
	r *http.Request,
	renderer DocumentRenderer,
	contentType, extension string,
) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	mes := r.URL.Query().Get("mes")
	if mes == "" {
		http.Error(w, "mes query parameter is required (YYYY-MM)", http.StatusBadRequest)
		return
	}

	data, err := h.composer.Compose(ctx, mes)
	if err != nil {
		h.writeComposeError(w, logger, mes, err)
		return
	}

	doc, err := renderer.Render(data)
	if err != nil {
		logger.Error().Err(err).Str("mes", mes).Msg("failed to render report document")
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=informe_%s.%s", mes, extension))
	if _, err := w.Write(doc); err != nil {
		logger.Error().Err(err).Str("mes", mes).Msg("failed to write report document")
	}
}

func (h *Handler) writeComposeError(w http.ResponseWriter, logger *zerolog.Logger, mes string, err error) {
	if errors.Is(err, reportsvc.ErrInvalidMonth) {
		http.Error(w, "invalid 'mes' format. Expected format: YYYY-MM", http.StatusBadRequest)
		return
	}
	logger.Error().Err(err).Str("mes", mes).Msg("failed to compose report")
	http.Error(w, "failed to generate report", http.StatusInternalServerError)
}
