package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
	assert.Equal(t, defaultRetention, conf.Report.Retention)
	assert.Equal(t, defaultTransitionTemplate, conf.Report.TransitionTemplate)
}

func TestNewReadsReportEnvironment(t *testing.T) {
	t.Setenv("REPORT_OUTPUT_DIR", "/var/reports")
	t.Setenv("REPORT_RETENTION", "2h")
	t.Setenv("REPORT_TEMPLATE_TRANSITION", "a.docx")
	t.Setenv("REPORT_TEMPLATE_NON_TRANSITION", "b.docx")
	t.Setenv("API_TOKEN", "secret")
	conf := New()

	assert.Equal(t, "/var/reports", conf.Report.OutputDir)
	assert.Equal(t, 2*time.Hour, conf.Report.Retention)
	assert.Equal(t, "a.docx", conf.Report.TransitionTemplate)
	assert.Equal(t, "b.docx", conf.Report.NonTransitionTemplate)
	assert.Equal(t, "secret", conf.APIToken)
}

func TestNewIgnoresInvalidRetention(t *testing.T) {
	t.Setenv("REPORT_RETENTION", "forever")
	conf := New()

	assert.Equal(t, defaultRetention, conf.Report.Retention)
}

func TestNewConfigFileIsOverriddenByEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
database:
  uri: mongodb://file:27017
  name: fromfile
report:
  outputDir: /from/file
  retention: 30m
  transitionTemplate: file-transition.docx
`), 0o600)
	require.NoError(t, err)

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_NAME", "fromenv")
	conf := New()

	assert.Equal(t, "mongodb://file:27017", conf.URL)
	assert.Equal(t, "fromenv", conf.DatabaseName)
	assert.Equal(t, "/from/file", conf.Report.OutputDir)
	assert.Equal(t, 30*time.Minute, conf.Report.Retention)
	assert.Equal(t, "file-transition.docx", conf.Report.TransitionTemplate)
	assert.Equal(t, defaultNonTransitionTemplate, conf.Report.NonTransitionTemplate)
}

func TestLoadFileRejectsBadRetention(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  retention: soon\n"), 0o600))

	c := &Config{}
	assert.Error(t, c.loadFile(path))
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"Response":{"Message":"error it borked","Error":"bad request"}}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(1))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(2))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))
}

func TestSetLoggerRejectsUnknownEnvironment(t *testing.T) {
	_, err := setLogger("staging-ish")
	assert.Error(t, err)
}
