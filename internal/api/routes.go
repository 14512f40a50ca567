package api

import (
	"net/http"

	"github.com/RMahshie/voltadash/internal/api/handlers"
	"github.com/RMahshie/voltadash/internal/device"
	"github.com/RMahshie/voltadash/internal/processing"
	"github.com/RMahshie/voltadash/internal/repository"
	"github.com/RMahshie/voltadash/internal/storage"
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Dependencies are the services the API routes are built on
type Dependencies struct {
	Scans          processing.ScanService
	Graphs         repository.GraphRepository
	Concentrations repository.ConcentrationRepository
	Exporter       storage.GraphExporter // optional
	Simulator      *device.Simulator     // optional, mounted at /device
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(router chi.Router, api huma.API, deps Dependencies) {
	// Initialize handlers
	scanHandler := handlers.NewScanHandler(deps.Scans, deps.Concentrations)
	concentrationHandler := handlers.NewConcentrationHandler(deps.Concentrations)
	graphHandler := handlers.NewGraphHandler(deps.Graphs, deps.Exporter)
	modelHandler := handlers.NewModelHandler()

	// Register concentration routes
	huma.Register(api, huma.Operation{
		OperationID: "listConcentrations",
		Method:      http.MethodGet,
		Path:        "/api/concentrations",
		Summary:     "List concentrations",
		Description: "Returns the default concentration labels followed by custom ones",
		Tags:        []string{"Concentrations"},
	}, concentrationHandler.ListConcentrations)

	huma.Register(api, huma.Operation{
		OperationID:   "addConcentration",
		Method:        http.MethodPost,
		Path:          "/api/concentrations",
		Summary:       "Add a concentration",
		Description:   "Normalizes and stores a custom concentration label",
		Tags:          []string{"Concentrations"},
		DefaultStatus: http.StatusCreated,
	}, concentrationHandler.AddConcentration)

	// Register scan routes
	huma.Register(api, huma.Operation{
		OperationID: "startDPVScan",
		Method:      http.MethodPost,
		Path:        "/api/scans/dpv",
		Summary:     "Run a DPV scan",
		Description: "Runs a differential pulse voltammetry scan and returns the composed voltammogram",
		Tags:        []string{"Scans"},
	}, scanHandler.StartDPVScan)

	huma.Register(api, huma.Operation{
		OperationID: "startEISScan",
		Method:      http.MethodPost,
		Path:        "/api/scans/eis",
		Summary:     "Run an EIS scan",
		Description: "Runs an impedance scan and returns the Nyquist and Bode series",
		Tags:        []string{"Scans"},
	}, scanHandler.StartEISScan)

	huma.Register(api, huma.Operation{
		OperationID: "getScanProgress",
		Method:      http.MethodGet,
		Path:        "/api/scans/progress",
		Summary:     "Get scan progress",
		Description: "Returns the countdown of a running EIS scan",
		Tags:        []string{"Scans"},
	}, scanHandler.GetScanProgress)

	huma.Register(api, huma.Operation{
		OperationID: "resetSessionPeaks",
		Method:      http.MethodDelete,
		Path:        "/api/sessions/{id}/peaks",
		Summary:     "Reset session peaks",
		Description: "Forgets the peak currents drawn for a session",
		Tags:        []string{"Scans"},
	}, scanHandler.ResetSessionPeaks)

	// Register model routes
	huma.Register(api, huma.Operation{
		OperationID: "getCalibration",
		Method:      http.MethodGet,
		Path:        "/api/calibration",
		Summary:     "Get calibration table",
		Description: "Returns the concentration to expected current reference table",
		Tags:        []string{"Models"},
	}, modelHandler.GetCalibration)

	huma.Register(api, huma.Operation{
		OperationID: "calibrationOverlay",
		Method:      http.MethodPost,
		Path:        "/api/calibration/overlay",
		Summary:     "Overlay a measured curve",
		Description: "Returns the calibration table with the peak of a measured voltammogram",
		Tags:        []string{"Models"},
	}, modelHandler.CalibrationOverlay)

	huma.Register(api, huma.Operation{
		OperationID: "simulateVoltammogram",
		Method:      http.MethodPost,
		Path:        "/api/theory/voltammogram",
		Summary:     "Simulate a voltammogram",
		Description: "Evaluates the theoretical DPV model",
		Tags:        []string{"Models"},
	}, modelHandler.SimulateVoltammogram)

	huma.Register(api, huma.Operation{
		OperationID: "simulateNyquist",
		Method:      http.MethodPost,
		Path:        "/api/theory/nyquist",
		Summary:     "Simulate a Nyquist plot",
		Description: "Evaluates a Randles equivalent circuit",
		Tags:        []string{"Models"},
	}, modelHandler.SimulateNyquist)

	// Register graph routes
	huma.Register(api, huma.Operation{
		OperationID:   "saveGraph",
		Method:        http.MethodPost,
		Path:          "/api/graphs",
		Summary:       "Save a graph",
		Description:   "Stores a curve for later viewing",
		Tags:          []string{"Graphs"},
		DefaultStatus: http.StatusCreated,
	}, graphHandler.SaveGraph)

	huma.Register(api, huma.Operation{
		OperationID: "listGraphs",
		Method:      http.MethodGet,
		Path:        "/api/graphs",
		Summary:     "List graphs",
		Description: "Returns every saved graph, newest first",
		Tags:        []string{"Graphs"},
	}, graphHandler.ListGraphs)

	huma.Register(api, huma.Operation{
		OperationID: "deleteGraph",
		Method:      http.MethodDelete,
		Path:        "/api/graphs/{id}",
		Summary:     "Delete a graph",
		Description: "Deletes a saved graph and its export",
		Tags:        []string{"Graphs"},
	}, graphHandler.DeleteGraph)

	huma.Register(api, huma.Operation{
		OperationID: "exportGraph",
		Method:      http.MethodPost,
		Path:        "/api/graphs/{id}/export",
		Summary:     "Export a graph",
		Description: "Uploads a graph to object storage and returns a download URL",
		Tags:        []string{"Graphs"},
	}, graphHandler.ExportGraph)

	if deps.Simulator != nil {
		router.Mount("/device", device.SimulatorHandler(deps.Simulator))
	}
}
