// Package httpapi exposes the receipt endpoints over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	app "github.com/receiptworks/points-service/internal/app"
	"github.com/receiptworks/points-service/internal/app/domain/receipt"
	"github.com/receiptworks/points-service/internal/app/metrics"
	"github.com/receiptworks/points-service/internal/app/services/receipts"
	"github.com/receiptworks/points-service/internal/app/storage"
)

const (
	serviceName    = "points-service"
	serviceVersion = "1.0.0"

	msgInvalidReceipt  = "The receipt is invalid"
	msgReceiptNotFound = "No receipt found for that ID"
)

// handler bundles HTTP endpoints for the application services.
type handler struct {
	app *app.Application
}

// NewHandler returns a router exposing the receipt REST API together with the
// health and metrics endpoints.
func NewHandler(application *app.Application) http.Handler {
	h := &handler{app: application}

	r := mux.NewRouter()
	r.HandleFunc("/receipts/process", h.processReceipt).Methods(http.MethodPost)
	r.HandleFunc("/receipts/{id}/points", h.receiptPoints).Methods(http.MethodGet)
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	return r
}

func (h *handler) processReceipt(w http.ResponseWriter, r *http.Request) {
	var rcpt receipt.Receipt
	if err := decodeJSON(r.Body, &rcpt); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidReceipt)
		return
	}

	id, err := h.app.Receipts.Process(r.Context(), rcpt)
	if err != nil {
		if errors.Is(err, receipts.ErrInvalidReceipt) {
			writeError(w, http.StatusBadRequest, msgInvalidReceipt)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to store receipt")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *handler) receiptPoints(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	points, err := h.app.Receipts.Points(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgReceiptNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to score receipt")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"points": points})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   serviceName,
		"version":   serviceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
