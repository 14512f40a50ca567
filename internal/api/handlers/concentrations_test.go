package handlers

import (
	"context"
	"testing"

	"github.com/RMahshie/voltadash/internal/repository"
	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var defaultLabels = []string{"500 µM", "400 µM", "250 µM", "100 µM", "10 µM", "1 µM", "BUFFER"}

func TestListConcentrations(t *testing.T) {
	repo := &MockConcentrationRepository{}
	repo.On("List", mock.Anything).Return([]*models.ConcentrationRecord{{Label: "50 µM"}}, nil)
	handler := NewConcentrationHandler(repo)

	resp, err := handler.ListConcentrations(context.Background(), &struct{}{})

	require.NoError(t, err)
	assert.Equal(t, append(append([]string{}, defaultLabels...), "50 µM"), resp.Body.Concentrations)
	repo.AssertExpectations(t)
}

func TestAddConcentration(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		mockSetup func(*MockConcentrationRepository)
		wantCode  int
		wantLabel string
	}{
		{
			name:  "new label is normalized",
			input: " 50 ",
			mockSetup: func(repo *MockConcentrationRepository) {
				repo.On("Create", mock.Anything, "50 µM").Return(&models.ConcentrationRecord{Label: "50 µM"}, nil)
				repo.On("List", mock.Anything).Return([]*models.ConcentrationRecord{{Label: "50 µM"}}, nil)
			},
			wantCode:  200,
			wantLabel: "50 µM",
		},
		{
			name:      "default label",
			input:     "500",
			mockSetup: func(repo *MockConcentrationRepository) {},
			wantCode:  409,
		},
		{
			name:      "buffer in lower case",
			input:     "buffer",
			mockSetup: func(repo *MockConcentrationRepository) {},
			wantCode:  409,
		},
		{
			name:  "already stored",
			input: "50 µM",
			mockSetup: func(repo *MockConcentrationRepository) {
				repo.On("Create", mock.Anything, "50 µM").Return(nil, repository.ErrAlreadyExists)
			},
			wantCode: 409,
		},
		{
			name:      "blank label",
			input:     "   ",
			mockSetup: func(repo *MockConcentrationRepository) {},
			wantCode:  400,
		},
		{
			name:  "database failure",
			input: "75",
			mockSetup: func(repo *MockConcentrationRepository) {
				repo.On("Create", mock.Anything, "75 µM").Return(nil, assert.AnError)
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockConcentrationRepository{}
			tt.mockSetup(repo)
			handler := NewConcentrationHandler(repo)

			req := &models.AddConcentrationRequest{}
			req.Body.Label = tt.input
			resp, err := handler.AddConcentration(context.Background(), req)

			if tt.wantCode == 200 {
				require.NoError(t, err)
				assert.Equal(t, tt.wantLabel, resp.Body.Label)
				assert.Contains(t, resp.Body.Concentrations, tt.wantLabel)
			} else {
				requireStatus(t, err, tt.wantCode)
				if tt.wantCode == 409 {
					assert.Contains(t, err.Error(), "Please enter a valid, unique concentration!")
				}
			}

			repo.AssertExpectations(t)
		})
	}
}
