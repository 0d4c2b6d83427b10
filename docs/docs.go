// Package docs CASA Court Report API.
//
// Documentation of CASA Court Report API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//     - application/vnd.openxmlformats-officedocument.wordprocessingml.document
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/casa-court-report/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/casa_cases/{case_id}/court_report courtReport courtReportDownload
// Renders the court report for a case and volunteer and returns the docx.
// responses:
//   200: courtReportFile
//   400: errorResponse
//   404: errorResponse
//   422: errorResponse
//   500: errorResponse

// swagger:parameters courtReportDownload
type courtReportParams struct {
	// in:path
	// required: true
	CaseID string `json:"case_id"`
	// in:query
	// required: true
	VolunteerID string `json:"volunteer_id"`
}

// The rendered report as a Word document.
// swagger:response courtReportFile
type courtReportFileWrapper struct {
	// in:body
	Body []byte
}

// swagger:route POST /api/v1/casa_cases/{case_id}/court_reports courtReport courtReportCreate
// Renders the court report to the server so it can be downloaded later.
// responses:
//   201: courtReportResponse
//   400: errorResponse
//   404: errorResponse
//   422: errorResponse
//   500: errorResponse

// swagger:parameters courtReportCreate
type courtReportCreateParams struct {
	// in:path
	// required: true
	CaseID string `json:"case_id"`
	// in:body
	Body models.CreateCourtReportRequest
}

// Where to download a generated court report.
// swagger:response courtReportResponse
type courtReportResponseWrapper struct {
	// in:body
	Body models.CourtReportResponse
}

// swagger:route GET /api/v1/court_reports/{report_id} courtReport courtReportByID
// Downloads a previously generated court report.
// responses:
//   200: courtReportFile
//   400: errorResponse
//   404: errorResponse

// swagger:parameters courtReportByID
type courtReportByIDParams struct {
	// in:path
	// required: true
	ReportID string `json:"report_id"`
}

// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
