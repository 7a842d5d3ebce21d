package services

import (
	"net/http"
	"testing"

	"github.com/catmap/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name           string
		ownerID        int
		caller         *models.Caller
		expectedError  bool
		expectedStatus int
	}{
		{
			name:           "anonymous caller is denied with 401",
			ownerID:        1,
			caller:         nil,
			expectedError:  true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "admin is allowed for any record",
			ownerID:       1,
			caller:        &models.Caller{ID: 99, Role: models.RoleAdmin},
			expectedError: false,
		},
		{
			name:          "owner is allowed",
			ownerID:       7,
			caller:        &models.Caller{ID: 7, Role: models.RoleUser},
			expectedError: false,
		},
		{
			name:           "authenticated non-owner is denied with 403",
			ownerID:        7,
			caller:         &models.Caller{ID: 8, Role: models.RoleUser},
			expectedError:  true,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:          "admin owning the record is allowed",
			ownerID:       5,
			caller:        &models.Caller{ID: 5, Role: models.RoleAdmin},
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.ownerID, tt.caller)

			if !tt.expectedError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			appErr, ok := err.(*models.AppError)
			require.True(t, ok)
			assert.Equal(t, tt.expectedStatus, appErr.Status)
		})
	}
}
