package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/agentstation/paybridge/internal/server/response"
	"github.com/agentstation/paybridge/pkg/errors"
	"github.com/agentstation/paybridge/pkg/logging"
	"github.com/agentstation/paybridge/pkg/pipeline"
)

// csvContentTypes are the upload content types accepted by the webhook.
// Some browsers label CSV files with the legacy Excel type.
var csvContentTypes = map[string]bool{
	"text/csv":                 true,
	"application/vnd.ms-excel": true,
}

// HandleWebhook handles POST /webhook. It receives a source file upload and
// runs it through the configured integration pipeline, returning the final
// stage's output.
func (h *Handlers) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.Atoi(r.URL.Query().Get("companyId"))
	if err != nil {
		response.ErrorFromType(w, errors.WrapValidation("companyId", err))
		return
	}
	integrationType := r.URL.Query().Get("integration_type")
	provider := r.URL.Query().Get("integration_provider")

	stages, err := h.stages.Stages(integrationType, provider)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	if len(stages) == 0 {
		response.InternalError(w, err)
		return
	}

	ctx := logging.WithIntegration(r.Context(), integrationType, provider)
	ctx = logging.WithCompany(ctx, companyID)
	log := logging.FromContext(ctx)

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "A file upload is required", err.Error())
		return
	}
	defer file.Close()

	if contentType := header.Header.Get("Content-Type"); !csvContentTypes[contentType] {
		log.Warn().Str("content_type", contentType).Msg("Rejected upload with unsupported file type")
		response.BadRequest(w, "Only CSV files are accepted", "")
		return
	}

	contents, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		response.InternalError(w, err)
		return
	}
	if int64(len(contents)) > h.maxUploadBytes {
		log.Warn().Int64("limit", h.maxUploadBytes).Msg("Rejected oversized upload")
		response.BadRequest(w, "File too large", "")
		return
	}

	log.Info().
		Str("filename", header.Filename).
		Int("bytes", len(contents)).
		Msg("Received webhook upload")

	run := pipeline.NewContext(map[string]any{
		"file_bytes": contents,
		"company_id": companyID,
	})
	run, err = pipeline.NewExecutor(h.registry).Run(ctx, stages, run)
	if err != nil {
		log.Error().Err(err).Msg("Pipeline run failed")
		response.ErrorFromType(w, err)
		return
	}

	result, ok := run.Get(stages[len(stages)-1].Output)
	if !ok {
		response.InternalError(w, nil)
		return
	}
	response.OK(w, result)
}
