package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/casa-court-report/api"
	"github.com/linesmerrill/casa-court-report/config"
	"github.com/linesmerrill/casa-court-report/databases"
	"github.com/linesmerrill/casa-court-report/models"
	"github.com/linesmerrill/casa-court-report/reports"
)

// reportTimeout bounds a whole report request, lookups and rendering included
const reportTimeout = 30 * time.Second

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
	client   databases.ClientHelper
}

// NewApp builds an App around an already connected database
func NewApp(conf config.Config, db databases.DatabaseHelper) (*App, error) {
	a := &App{Config: conf, dbHelper: db}
	if err := a.initializeRoutes(); err != nil {
		return nil, err
	}
	return a, nil
}

// New creates a new mux router and all the routes
func (a *App) New() (*mux.Router, error) {
	// setup go-guardian for middleware
	tokenAuth, err := api.NewTokenAuth(a.Config.APIToken)
	if err != nil {
		return nil, err
	}

	cr := CourtReport{
		Reports: reports.CaseCourtReport{
			Builder: reports.Builder{
				CDB:  databases.NewCasaCaseDatabase(a.dbHelper),
				UDB:  databases.NewUserDatabase(a.dbHelper),
				ADB:  databases.NewCaseAssignmentDatabase(a.dbHelper),
				SVDB: databases.NewSupervisorVolunteerDatabase(a.dbHelper),
				CCDB: databases.NewCaseContactDatabase(a.dbHelper),
				CTDB: databases.NewContactTypeDatabase(a.dbHelper),

				QueryTimeout: api.QueryTimeout,
			},
			Templates: reports.TemplateSet{
				Transition:    a.Config.Report.TransitionTemplate,
				NonTransition: a.Config.Report.NonTransitionTemplate,
			},
		},
		OutputDir: a.Config.Report.OutputDir,
	}

	r := mux.NewRouter()
	r.Use(api.LoggingMiddleware)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(tokenAuth.Middleware, api.TimeoutMiddleware(reportTimeout))

	apiCreate.HandleFunc("/casa_cases/{case_id}/court_report", cr.CourtReportHandler).Methods("GET")
	apiCreate.HandleFunc("/casa_cases/{case_id}/court_reports", cr.CreateCourtReportHandler).Methods("POST")
	apiCreate.HandleFunc("/court_reports/{report_id}", cr.DownloadCourtReportHandler).Methods("GET")

	return r, nil
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().Errorw("failed to create new client", "error", err)
		return err
	}

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().Errorw("failed to connect to database", "error", err)
		return err
	}
	a.client = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	zap.S().Info("casa-court-report has connected to the database")

	// initialize api router
	return a.initializeRoutes()
}

// Close disconnects from the database
func (a *App) Close(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func (a *App) initializeRoutes() error {
	r, err := a.New()
	if err != nil {
		return err
	}
	a.Router = r
	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
