package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/casa-court-report/config"
	"github.com/linesmerrill/casa-court-report/documents"
	"github.com/linesmerrill/casa-court-report/models"
	"github.com/linesmerrill/casa-court-report/reports"
)

// ReportGenerator produces court reports, in memory or on disk
type ReportGenerator interface {
	GenerateToBytes(ctx context.Context, req reports.Request) (*reports.Report, error)
	Generate(ctx context.Context, req reports.Request, outputPath string) (*reports.Context, error)
}

// CourtReport exposes the court report generator over http
type CourtReport struct {
	Reports   ReportGenerator
	OutputDir string
}

// CourtReportHandler renders a case's court report and sends it back as a docx
func (c CourtReport) CourtReportHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]
	volunteerID := r.URL.Query().Get("volunteer_id")
	if volunteerID == "" {
		config.ErrorStatus("query param volunteer_id is required", http.StatusBadRequest, w, errors.New("missing volunteer_id"))
		return
	}

	report, err := c.Reports.GenerateToBytes(r.Context(), reports.Request{CaseID: caseID, VolunteerID: volunteerID})
	if err != nil {
		reportErrorStatus(w, err)
		return
	}

	w.Header().Set("Content-Type", documents.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename()))
	w.WriteHeader(http.StatusOK)
	w.Write(report.Content)
}

// CreateCourtReportHandler renders a court report into the output directory so
// it can be downloaded later by id
func (c CourtReport) CreateCourtReportHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var body models.CreateCourtReportRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if body.VolunteerID == "" {
		config.ErrorStatus("volunteerId is required", http.StatusBadRequest, w, errors.New("missing volunteerId"))
		return
	}

	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		config.ErrorStatus("failed to create report directory", http.StatusInternalServerError, w, err)
		return
	}

	id := uuid.New()
	reportCtx, err := c.Reports.Generate(r.Context(), reports.Request{CaseID: caseID, VolunteerID: body.VolunteerID}, c.reportPath(id))
	if err != nil {
		reportErrorStatus(w, err)
		return
	}

	b, err := json.Marshal(models.CourtReportResponse{
		ID:          id.String(),
		CaseNumber:  reportCtx.CasaCase.CaseNumber,
		Contacts:    len(reportCtx.CaseContacts),
		DownloadURL: fmt.Sprintf("/api/v1/court_reports/%s", id),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// DownloadCourtReportHandler sends back a report made by CreateCourtReportHandler
func (c CourtReport) DownloadCourtReportHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["report_id"])
	if err != nil {
		config.ErrorStatus("invalid report id", http.StatusBadRequest, w, err)
		return
	}

	f, err := os.Open(c.reportPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			config.ErrorStatus("court report not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to open court report", http.StatusInternalServerError, w, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		config.ErrorStatus("failed to stat court report", http.StatusInternalServerError, w, err)
		return
	}

	name := id.String() + ".docx"
	w.Header().Set("Content-Type", documents.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	http.ServeContent(w, r, name, info.ModTime(), f)
}

func (c CourtReport) reportPath(id uuid.UUID) string {
	return filepath.Join(c.OutputDir, id.String()+".docx")
}

// reportErrorStatus maps report generation failures onto http statuses
func reportErrorStatus(w http.ResponseWriter, err error) {
	var renderErr *documents.RenderError
	switch {
	case errors.Is(err, reports.ErrEntityNotFound):
		config.ErrorStatus("failed to find case or volunteer", http.StatusNotFound, w, err)
	case errors.Is(err, documents.ErrTemplateNotFound), errors.Is(err, documents.ErrMalformedTemplate):
		config.ErrorStatus("court report template is unavailable", http.StatusInternalServerError, w, err)
	case errors.As(err, &renderErr):
		zap.S().Warnw("template references data the report does not have",
			"placeholder", renderErr.Placeholder,
			"part", renderErr.Part)
		config.ErrorStatus("failed to render court report", http.StatusUnprocessableEntity, w, err)
	case errors.Is(err, context.DeadlineExceeded):
		config.ErrorStatus("court report took too long", http.StatusGatewayTimeout, w, err)
	default:
		config.ErrorStatus("failed to generate court report", http.StatusInternalServerError, w, err)
	}
}
