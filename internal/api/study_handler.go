package api

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/study-tracker/internal/api/shared"
	"github.com/phrazzld/study-tracker/internal/domain"
	"github.com/phrazzld/study-tracker/internal/platform/logger"
)

// DownloadPath is where clients fetch the latest export.
const DownloadPath = "/api/export/download"

// StudyHandler handles study list HTTP requests
type StudyHandler struct {
	session *Session
	logger  *slog.Logger
}

// NewStudyHandler creates a new StudyHandler
func NewStudyHandler(session *Session, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StudyHandler")
	}

	return &StudyHandler{
		session: session,
		logger:  logger.With(slog.String("component", "study_handler")),
	}
}

// Routes registers the study endpoints on r.
func (h *StudyHandler) Routes(r chi.Router) {
	r.Get("/items", h.ListItems)
	r.Post("/items", h.AddItem)
	r.Delete("/items", h.DeleteItems)
	r.Post("/items/{id}/repetitions", h.IncrementRepetition)
	r.Post("/export", h.Export)
	r.Get("/export/download", h.DownloadExport)
}

// ListItems handles GET /api/items
func (h *StudyHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, version := h.session.Items()
	shared.RespondWithJSON(w, r, http.StatusOK, listToResponse(items, version))
}

// AddItem handles POST /api/items
func (h *StudyHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	item, err := h.session.AddItem(r.Context(), req.Title)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("item added via api", slog.String("item_id", item.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
}

// IncrementRepetition handles POST /api/items/{id}/repetitions. An ID that
// no longer exists answers 204 and changes nothing.
func (h *StudyHandler) IncrementRepetition(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, domain.ErrInvalidID)
		return
	}

	item, ok := h.session.IncrementRepetition(r.Context(), id)
	if !ok {
		log.Debug("repetition for stale item ignored", slog.String("item_id", id.String()))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// DeleteItems handles DELETE /api/items
func (h *StudyHandler) DeleteItems(w http.ResponseWriter, r *http.Request) {
	var req DeleteItemsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	items, version, err := h.session.DeleteItems(r.Context(), req.Positions)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listToResponse(items, version))
}

// Export handles POST /api/export
func (h *StudyHandler) Export(w http.ResponseWriter, r *http.Request) {
	path, count, err := h.session.Export(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ExportResponse{
		Path:        path,
		ItemCount:   count,
		DownloadURL: DownloadPath,
	})
}

// DownloadExport handles GET /api/export/download. It exports the current
// list and streams the written file as an attachment, brotli-compressed
// when the client accepts it.
func (h *StudyHandler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	path, _, err := h.session.Export(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	defer f.Close()

	header := w.Header()
	header.Set("Content-Type", "application/json; charset=utf-8")
	header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": filepath.Base(path),
	}))
	header.Add("Vary", "Accept-Encoding")

	if !acceptsBrotli(r) {
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, f); err != nil {
			log.Error("failed to stream export", slog.Any("error", err))
		}
		return
	}

	header.Set("Content-Encoding", "br")
	w.WriteHeader(http.StatusOK)
	bw := brotli.NewWriterLevel(w, brotli.DefaultCompression)
	if _, err := io.Copy(bw, f); err != nil {
		log.Error("failed to stream compressed export", slog.Any("error", err))
	}
	if err := bw.Close(); err != nil {
		log.Error("failed to finish compressed export", slog.Any("error", err))
	}
}

// acceptsBrotli reports whether the Accept-Encoding header lists br with a
// non-zero quality.
func acceptsBrotli(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "br") {
			continue
		}
		return codingQuality(params) > 0
	}
	return false
}

// codingQuality returns the q value from the parameters of one
// Accept-Encoding entry. A missing q means 1; an unparseable one means 0.
func codingQuality(params string) float64 {
	for _, param := range strings.Split(params, ";") {
		name, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(name), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		return q
	}
	return 1
}
