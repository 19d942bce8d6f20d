package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/agentstation/paybridge/internal/server/response"
	"github.com/agentstation/paybridge/pkg/errors"
	"github.com/agentstation/paybridge/pkg/logging"
	"github.com/agentstation/paybridge/pkg/payroll"
	"github.com/agentstation/paybridge/pkg/validate"
)

// validateRequest is the body of POST /validate: previously transformed rows
// to check against the company's employee directory.
type validateRequest struct {
	Rows []payroll.Record `json:"rows"`
}

// HandleValidate handles POST /validate. It fetches the employee directory
// for the company and returns the field-level validation report.
func (h *Handlers) HandleValidate(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.Atoi(r.URL.Query().Get("companyId"))
	if err != nil {
		response.ErrorFromType(w, errors.WrapValidation("companyId", err))
		return
	}
	integrationType := r.URL.Query().Get("integration_type")
	provider := r.URL.Query().Get("integration_provider")

	if _, err := h.stages.Stages(integrationType, provider); err != nil {
		response.ErrorFromType(w, err)
		return
	}
	if integrationType != "payroll" {
		response.BadRequest(w, "Validation only supported for integration_type=payroll", "")
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Request body must be JSON with a rows array", err.Error())
		return
	}

	ctx := logging.WithIntegration(r.Context(), integrationType, provider)
	ctx = logging.WithCompany(ctx, companyID)
	log := logging.FromContext(ctx)

	employees, err := h.fetcher.FetchEmployees(ctx, companyID)
	if err != nil {
		log.Error().Err(err).Msg("Employee directory fetch failed")
		response.ErrorFromType(w, err)
		return
	}

	result := validate.Records(ctx, req.Rows, employees)
	response.OK(w, result)
}
