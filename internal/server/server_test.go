package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/paybridge/pkg/directory"
	"github.com/agentstation/paybridge/pkg/errors"
	"github.com/agentstation/paybridge/pkg/logging"
	"github.com/agentstation/paybridge/pkg/pipeline"
)

type stubFetcher struct {
	employees []directory.Employee
	err       error
}

func (s *stubFetcher) FetchEmployees(_ context.Context, _ int) ([]directory.Employee, error) {
	return s.employees, s.err
}

func testStages() pipeline.Config {
	return pipeline.Config{
		"payroll": {
			"daxco": []pipeline.Stage{
				{Name: "fetch_employees", Function: pipeline.FuncFetchEmployees, Inputs: []string{"company_id"}, Output: "employees"},
				{Name: "daxco_transformation", Function: pipeline.FuncDaxcoTransform, Inputs: []string{"file_bytes", "employees"}, Output: "records"},
			},
		},
	}
}

func newTestServer(t *testing.T, fetcher *stubFetcher) *Server {
	t.Helper()
	logger := logging.NewNopLogger()
	cfg := DefaultConfig()
	cfg.CORSEnabled = false
	return New(testStages(), fetcher, logger, cfg)
}

func multipartCSV(t *testing.T, contents, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="export.csv"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

const exportCSV = "Department:,Aquatics\nStaff First Name,Staff Last Name,Scheduled Payroll\njane,doe,100\n"

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestWebhookTransformsUpload(t *testing.T) {
	fetcher := &stubFetcher{employees: []directory.Employee{
		{ID: "E100", FirstName: "Jane", LastName: "Doe"},
	}}
	srv := newTestServer(t, fetcher)

	body, contentType := multipartCSV(t, exportCSV, "text/csv")
	req := httptest.NewRequest(http.MethodPost,
		"/webhook?companyId=7&integration_type=payroll&integration_provider=daxco", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "E100", resp.Data[0]["employee_id"])
	assert.Equal(t, "100", resp.Data[0]["hours_or_amount"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestWebhookRejectsUnsupportedIntegration(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	body, contentType := multipartCSV(t, exportCSV, "text/csv")
	req := httptest.NewRequest(http.MethodPost,
		"/webhook?companyId=7&integration_type=timekeeping&integration_provider=daxco", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookRejectsNonNumericCompanyID(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	body, contentType := multipartCSV(t, exportCSV, "text/csv")
	req := httptest.NewRequest(http.MethodPost,
		"/webhook?companyId=acme&integration_type=payroll&integration_provider=daxco", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "companyId")
}

func TestWebhookRejectsNonCSV(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	body, contentType := multipartCSV(t, "{}", "application/json")
	req := httptest.NewRequest(http.MethodPost,
		"/webhook?companyId=7&integration_type=payroll&integration_provider=daxco", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only CSV files are accepted")
}

func TestWebhookRejectsOversizedUpload(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	srv.config.MaxUploadBytes = 64

	body, contentType := multipartCSV(t, exportCSV+strings.Repeat("x", 128), "text/csv")
	req := httptest.NewRequest(http.MethodPost,
		"/webhook?companyId=7&integration_type=payroll&integration_provider=daxco", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File too large")
}

func TestWebhookDirectoryOutageIsRetryable(t *testing.T) {
	fetcher := &stubFetcher{err: errors.NewDependencyError("hrpremier", 3, errors.ErrTimeout)}
	srv := newTestServer(t, fetcher)

	body, contentType := multipartCSV(t, exportCSV, "text/csv")
	req := httptest.NewRequest(http.MethodPost,
		"/webhook?companyId=7&integration_type=payroll&integration_provider=daxco", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestWebhookSourceFormatErrorIsClientFault(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	body, contentType := multipartCSV(t, "no,header,anywhere\n", "text/csv")
	req := httptest.NewRequest(http.MethodPost,
		"/webhook?companyId=7&integration_type=payroll&integration_provider=daxco", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	fetcher := &stubFetcher{employees: []directory.Employee{
		{ID: "42", FirstName: "Jane", LastName: "Doe"},
	}}
	srv := newTestServer(t, fetcher)

	payload := `{"rows":[{"employee_id":"","first_name":"jane","last_name":"doe","hours_or_amount":"$1,200.00"}]}`
	req := httptest.NewRequest(http.MethodPost,
		"/validate?companyId=7&integration_type=payroll&integration_provider=daxco",
		strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			AllValid bool `json:"all_valid"`
			Rows     []struct {
				Employee struct {
					Valid           bool             `json:"valid"`
					PossibleMatches []map[string]any `json:"possible_matches"`
				} `json:"Employee"`
				HoursOrAmount float64 `json:"Hours or Amount"`
			} `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Rows, 1)
	assert.False(t, resp.Data.AllValid)
	assert.False(t, resp.Data.Rows[0].Employee.Valid)
	require.Len(t, resp.Data.Rows[0].Employee.PossibleMatches, 1)
	assert.Equal(t, "42", resp.Data.Rows[0].Employee.PossibleMatches[0]["employee_id"])
	assert.Equal(t, 1200.0, resp.Data.Rows[0].HoursOrAmount)
}

func TestValidateRequiresPayrollIntegration(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	req := httptest.NewRequest(http.MethodPost,
		"/validate?companyId=7&integration_type=payroll&integration_provider=gusto",
		strings.NewReader(`{"rows":[]}`))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadReturnsCSVAttachment(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	payload := `{"rows":[{"employee_id":"E100","gross_to_net_code":"1","type_code":"REG","hours_or_amount":"40","temporary_rate":"","distributed_dept_code":"4287"}]}`
	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "employee_id,gross_to_net_code,type_code,hours_or_amount,temporary_rate,distributed_dept_code")
	assert.Contains(t, w.Body.String(), "E100,1,REG,40,,4287")
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
