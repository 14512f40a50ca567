package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RMahshie/voltadash/internal/processing"
	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockScanService implements processing.ScanService for testing
type MockScanService struct {
	mock.Mock
}

func (m *MockScanService) RunDPV(ctx context.Context, sessionID string, label processing.Concentration, option processing.SampleOption) (*processing.DPVResult, error) {
	args := m.Called(ctx, sessionID, label, option)
	result, _ := args.Get(0).(*processing.DPVResult)
	return result, args.Error(1)
}

func (m *MockScanService) RunEIS(ctx context.Context, sessionID string, label processing.Concentration) (*processing.EISResult, error) {
	args := m.Called(ctx, sessionID, label)
	result, _ := args.Get(0).(*processing.EISResult)
	return result, args.Error(1)
}

func (m *MockScanService) Progress() processing.Progress {
	args := m.Called()
	return args.Get(0).(processing.Progress)
}

func (m *MockScanService) ResetSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockConcentrationRepository implements repository.ConcentrationRepository for testing
type MockConcentrationRepository struct {
	mock.Mock
}

func (m *MockConcentrationRepository) Create(ctx context.Context, label string) (*models.ConcentrationRecord, error) {
	args := m.Called(ctx, label)
	rec, _ := args.Get(0).(*models.ConcentrationRecord)
	return rec, args.Error(1)
}

func (m *MockConcentrationRepository) List(ctx context.Context) ([]*models.ConcentrationRecord, error) {
	args := m.Called(ctx)
	recs, _ := args.Get(0).([]*models.ConcentrationRecord)
	return recs, args.Error(1)
}

// MockGraphRepository implements repository.GraphRepository for testing
type MockGraphRepository struct {
	mock.Mock
}

func (m *MockGraphRepository) Create(ctx context.Context, graph *models.Graph) error {
	args := m.Called(ctx, graph)
	return args.Error(0)
}

func (m *MockGraphRepository) List(ctx context.Context) ([]*models.Graph, error) {
	args := m.Called(ctx)
	graphs, _ := args.Get(0).([]*models.Graph)
	return graphs, args.Error(1)
}

func (m *MockGraphRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Graph, error) {
	args := m.Called(ctx, id)
	graph, _ := args.Get(0).(*models.Graph)
	return graph, args.Error(1)
}

func (m *MockGraphRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGraphExporter implements storage.GraphExporter for testing
type MockGraphExporter struct {
	mock.Mock
}

func (m *MockGraphExporter) Export(ctx context.Context, graph *models.Graph) (string, error) {
	args := m.Called(ctx, graph)
	return args.String(0), args.Error(1)
}

func (m *MockGraphExporter) Delete(ctx context.Context, graphID string) error {
	args := m.Called(ctx, graphID)
	return args.Error(0)
}

func (m *MockGraphExporter) URLExpiry() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// requireStatus asserts that err is a huma error with the given status
func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var se huma.StatusError
	require.True(t, errors.As(err, &se), "expected huma status error, got %v", err)
	require.Equal(t, status, se.GetStatus())
}
