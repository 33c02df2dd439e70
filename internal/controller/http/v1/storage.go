package v1

import (
	"log/slog"
	"net/http"
)

type StorageHandler struct {
	log     *slog.Logger
	storage StorageService
}

func NewStorageHandler(log *slog.Logger, storage StorageService) *StorageHandler {
	return &StorageHandler{
		log:     log,
		storage: storage,
	}
}

type CleanupResponse struct {
	DeletedFiles int `json:"deleted_files"`
}

func (h *StorageHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.storage.StorageStatistics(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *StorageHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.storage.CleanupOrphanedFiles(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "cleaned up orphaned files", slog.Int("deleted", deleted))

	writeJSON(w, http.StatusOK, CleanupResponse{DeletedFiles: deleted})
}
