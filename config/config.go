package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/linesmerrill/casa-court-report/models"
)

const (
	defaultOutputDir             = "tmp/reports"
	defaultRetention             = 24 * time.Hour
	defaultTransitionTemplate    = "templates/docx/report_template_transition.docx"
	defaultNonTransitionTemplate = "templates/docx/report_template_non_transition.docx"
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	Env          string
	APIToken     string
	Report       ReportConfig
}

// ReportConfig holds everything the court report engine needs from the environment
type ReportConfig struct {
	OutputDir             string
	Retention             time.Duration
	TransitionTemplate    string
	NonTransitionTemplate string
}

// fileConfig mirrors the optional yaml file pointed to by CONFIG_FILE
type fileConfig struct {
	Database struct {
		URI  string `yaml:"uri"`
		Name string `yaml:"name"`
	} `yaml:"database"`
	Report struct {
		OutputDir             string `yaml:"outputDir"`
		Retention             string `yaml:"retention"`
		TransitionTemplate    string `yaml:"transitionTemplate"`
		NonTransitionTemplate string `yaml:"nonTransitionTemplate"`
	} `yaml:"report"`
}

// New sets up all config related services
func New() *Config {
	env := os.Getenv("ENV")

	//setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	conf := &Config{
		Env: env,
		Report: ReportConfig{
			OutputDir:             defaultOutputDir,
			Retention:             defaultRetention,
			TransitionTemplate:    defaultTransitionTemplate,
			NonTransitionTemplate: defaultNonTransitionTemplate,
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := conf.loadFile(path); err != nil {
			zap.S().Warnw("failed to load config file, falling back to environment",
				"path", path,
				"error", err)
		}
	}

	conf.loadEnv()
	return conf
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	setIfNotEmpty(&c.URL, fc.Database.URI)
	setIfNotEmpty(&c.DatabaseName, fc.Database.Name)
	setIfNotEmpty(&c.Report.OutputDir, fc.Report.OutputDir)
	setIfNotEmpty(&c.Report.TransitionTemplate, fc.Report.TransitionTemplate)
	setIfNotEmpty(&c.Report.NonTransitionTemplate, fc.Report.NonTransitionTemplate)
	if fc.Report.Retention != "" {
		d, err := time.ParseDuration(fc.Report.Retention)
		if err != nil {
			return fmt.Errorf("invalid report retention %q: %w", fc.Report.Retention, err)
		}
		c.Report.Retention = d
	}
	return nil
}

// loadEnv applies environment variables, which always win over the config file
func (c *Config) loadEnv() {
	setIfNotEmpty(&c.URL, os.Getenv("DB_URI"))
	setIfNotEmpty(&c.DatabaseName, os.Getenv("DB_NAME"))
	setIfNotEmpty(&c.BaseURL, os.Getenv("BASE_URL"))
	setIfNotEmpty(&c.Port, os.Getenv("PORT"))
	setIfNotEmpty(&c.APIToken, os.Getenv("API_TOKEN"))
	setIfNotEmpty(&c.Report.OutputDir, os.Getenv("REPORT_OUTPUT_DIR"))
	setIfNotEmpty(&c.Report.TransitionTemplate, os.Getenv("REPORT_TEMPLATE_TRANSITION"))
	setIfNotEmpty(&c.Report.NonTransitionTemplate, os.Getenv("REPORT_TEMPLATE_NON_TRANSITION"))

	if v := os.Getenv("REPORT_RETENTION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			zap.S().Warnw("ignoring invalid REPORT_RETENTION", "value", v, "error", err)
			return
		}
		c.Report.Retention = d
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().Errorw(message, "error", err)
	resp := models.ErrorMessageResponse{Response: models.MessageError{Message: message}}
	if err != nil {
		resp.Response.Error = err.Error()
	}
	b, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
