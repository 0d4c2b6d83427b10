package models

// CourtReportResponse is returned when a court report is generated to disk
type CourtReportResponse struct {
	ID          string `json:"id"`
	CaseNumber  string `json:"caseNumber"`
	Contacts    int    `json:"contacts"`
	DownloadURL string `json:"downloadUrl"`
}

// CreateCourtReportRequest is the body accepted when generating a court report
type CreateCourtReportRequest struct {
	VolunteerID string `json:"volunteerId"`
}
