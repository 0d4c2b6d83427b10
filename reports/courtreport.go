package reports

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/casa-court-report/documents"
)

// TemplateSet holds the docx templates for the two kinds of court report
type TemplateSet struct {
	Transition    string
	NonTransition string
}

// For returns the template for a case. Transition aged youth get the
// transition template.
func (t TemplateSet) For(transitionAgedYouth bool) string {
	if transitionAgedYouth {
		return t.Transition
	}
	return t.NonTransition
}

// Request identifies the report to generate. TemplatePath overrides the
// template picked from the case's transition status.
type Request struct {
	CaseID       string
	VolunteerID  string
	TemplatePath string
}

// Report is a rendered court report
type Report struct {
	Context  *Context
	Template string
	Content  []byte
}

// Filename suggests a download name for the report, based on the case number
func (r Report) Filename() string {
	return reportFilename(r.Context)
}

// CaseCourtReport builds report contexts and renders them into templates
type CaseCourtReport struct {
	Builder   ContextBuilder
	Templates TemplateSet
}

// GenerateToBytes renders the report in memory
func (g CaseCourtReport) GenerateToBytes(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()
	reportCtx, template, err := g.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	content, err := documents.Render(reportCtx, template)
	if err != nil {
		logFailure(req, template, err)
		return nil, err
	}

	logSuccess(req, template, reportCtx, start)
	return &Report{Context: reportCtx, Template: template, Content: content}, nil
}

// Generate renders the report straight to outputPath
func (g CaseCourtReport) Generate(ctx context.Context, req Request, outputPath string) (*Context, error) {
	start := time.Now()
	reportCtx, template, err := g.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := documents.RenderToFile(reportCtx, template, outputPath); err != nil {
		logFailure(req, template, err)
		return nil, err
	}

	logSuccess(req, template, reportCtx, start)
	return reportCtx, nil
}

func (g CaseCourtReport) prepare(ctx context.Context, req Request) (*Context, string, error) {
	reportCtx, err := g.Builder.Build(ctx, req.CaseID, req.VolunteerID)
	if err != nil {
		zap.S().Warnw("failed to build court report context",
			"caseID", req.CaseID,
			"volunteerID", req.VolunteerID,
			"error", err)
		return nil, "", err
	}

	template := req.TemplatePath
	if template == "" {
		template = g.Templates.For(reportCtx.CasaCase.TransitionAgedYouth)
	}
	if template == "" {
		return nil, "", fmt.Errorf("%w: no template configured", documents.ErrTemplateNotFound)
	}
	return reportCtx, template, nil
}

func logSuccess(req Request, template string, reportCtx *Context, start time.Time) {
	zap.S().Infow("generated court report",
		"caseID", req.CaseID,
		"volunteerID", req.VolunteerID,
		"template", template,
		"contacts", len(reportCtx.CaseContacts),
		"took", time.Since(start))
}

func logFailure(req Request, template string, err error) {
	zap.S().Errorw("failed to render court report",
		"caseID", req.CaseID,
		"volunteerID", req.VolunteerID,
		"template", template,
		"error", err)
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func reportFilename(reportCtx *Context) string {
	name := ""
	if reportCtx != nil {
		name = strings.Trim(unsafeFilenameChars.ReplaceAllString(reportCtx.CasaCase.CaseNumber, "-"), "-.")
	}
	if name == "" {
		name = "court-report"
	}
	return name + ".docx"
}
