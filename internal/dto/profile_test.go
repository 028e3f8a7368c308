package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newwork/staffhub/internal/core/domain"
	"github.com/newwork/staffhub/internal/core/policy"
	"github.com/newwork/staffhub/internal/dto"
)

func TestToProfileResponse_ZeroRatingStillSerialized(t *testing.T) {
	manager := domain.User{ID: "1", Role: domain.RoleManager}
	p := domain.EmployeeProfile{
		ID: "2", FirstName: "Michael", LastName: "Chen",
		PerformanceRating: 0,
	}

	view := policy.ViewProfile(manager, p, nil)
	resp := dto.ToProfileResponse(view)

	// A rating of zero is a real value, distinct from an omitted field.
	require.NotNil(t, resp.PerformanceRating)
	assert.Equal(t, 0.0, *resp.PerformanceRating)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"performanceRating":0`)
}

func TestToProfileResponse_RestrictedViewOmitsRating(t *testing.T) {
	coworker := domain.User{ID: "3", Role: domain.RoleCoworker}
	p := domain.EmployeeProfile{ID: "2", PerformanceRating: 4.5}

	view := policy.ViewProfile(coworker, p, nil)
	resp := dto.ToProfileResponse(view)

	assert.Nil(t, resp.PerformanceRating)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "performanceRating")
}
