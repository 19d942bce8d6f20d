package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/agentstation/paybridge/internal/server/response"
	"github.com/agentstation/paybridge/pkg/logging"
	"github.com/agentstation/paybridge/pkg/payroll"
)

// downloadRequest is the body of POST /download: transformed rows to render
// as a CSV attachment.
type downloadRequest struct {
	Rows []payroll.Record `json:"rows"`
}

// HandleDownload handles POST /download. It returns the provided rows as a
// downloadable CSV file in the canonical export column order.
func (h *Handlers) HandleDownload(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Request body must be JSON with a rows array", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=output.csv`)
	if err := payroll.WriteCSV(w, req.Rows); err != nil {
		// Headers are already sent; log and give up on this response.
		logging.FromContext(r.Context()).Error().Err(err).Msg("Failed to stream CSV download")
	}
}
