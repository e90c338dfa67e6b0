package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablasso/siteplan/internal/plan"
)

func testRequest() plan.Request {
	return plan.NewRequest(
		plan.Field{Name: plan.FieldArea, Value: "150"},
		plan.Field{Name: plan.FieldFloors, Value: "1"},
	)
}

func newTestServer(t *testing.T, path string, status int, body string) (*httptest.Server, *[]byte) {
	t.Helper()
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, path, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		received, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestNew_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://example.com", "http://"} {
		_, err := New(raw)
		assert.Error(t, err, "expected error for %q", raw)
	}
}

func TestClient_Calculate(t *testing.T) {
	srv, received := newTestServer(t, CalculatePath, http.StatusOK, `{
		"timeline_days": 45,
		"calculations": {
			"built_up_area_sqft": 1200,
			"cement_bags": 480,
			"steel_kg": 4800,
			"sand_cft": 979.2,
			"aggregate_cft": 729.6,
			"bricks": 9600
		}
	}`)

	c, err := New(srv.URL)
	require.NoError(t, err)

	calc, err := c.Calculate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, 45, calc.TimelineDays)
	require.NotNil(t, calc.Materials)
	assert.Equal(t, 1200.0, calc.Materials.BuiltUpAreaSqft)
	assert.Equal(t, 979.2, calc.Materials.SandCft)

	assert.JSONEq(t, `{"area":"150","floors":"1"}`, string(*received))
}

func TestClient_CalculateServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
		service bool
	}{
		{
			name:    "error field on 500",
			status:  http.StatusInternalServerError,
			body:    `{"error": "could not convert string to float: ''"}`,
			message: "could not convert string to float: ''",
			service: true,
		},
		{
			name:    "error field on 200",
			status:  http.StatusOK,
			body:    `{"error": "bad input"}`,
			message: "bad input",
			service: true,
		},
		{
			name:    "non-json 502",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			message: "/api/calculate returned 502 Bad Gateway",
		},
		{
			name:    "missing results",
			status:  http.StatusOK,
			body:    `{"timeline_days": 10}`,
			message: "calculation response missing results",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, CalculatePath, tt.status, tt.body)
			c, err := New(srv.URL)
			require.NoError(t, err)

			calc, err := c.Calculate(context.Background(), testRequest())
			require.Error(t, err)
			assert.Nil(t, calc)
			assert.Equal(t, tt.message, err.Error())

			var se *ServiceError
			assert.Equal(t, tt.service, errors.As(err, &se))
			if tt.service {
				assert.Equal(t, tt.status, se.Status)
				assert.Equal(t, CalculatePath, se.Endpoint)
			}
		})
	}
}

func TestClient_GenerateAIPlan(t *testing.T) {
	srv, received := newTestServer(t, AIPlanPath, http.StatusOK, `{
		"ai_analysis": {
			"worker_requirements": {"mason": 5, "helper": "8"},
			"construction_schedule_phases": [{"phase": "Foundation", "duration_weeks": 3, "description": "Footings"}],
			"cost_breakdown_percentage": {"material": "60%", "labor": "40%"},
			"blueprint_suggestions": {"room_configuration": "2BHK", "description": "Compact."}
		}
	}`)

	c, err := New(srv.URL)
	require.NoError(t, err)

	req := testRequest().With(plan.FieldTimelineDays, "45")
	analysis, err := c.GenerateAIPlan(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, analysis.WorkerRequirements)
	assert.Equal(t, plan.Pairs{{Key: "mason", Value: "5"}, {Key: "helper", Value: "8"}}, *analysis.WorkerRequirements)
	require.Len(t, analysis.SchedulePhases, 1)
	assert.Equal(t, plan.Text("3"), analysis.SchedulePhases[0].DurationWeeks)
	require.NotNil(t, analysis.Blueprint)
	assert.Equal(t, plan.Text("2BHK"), analysis.Blueprint.RoomConfiguration)

	var sent map[string]string
	require.NoError(t, json.Unmarshal(*received, &sent))
	assert.Equal(t, "45", sent[plan.FieldTimelineDays])
}

func TestClient_GenerateAIPlanErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"service unavailable", http.StatusServiceUnavailable, `{"error": "AI Service unavailable"}`, "AI Service unavailable"},
		{"parse failure", http.StatusInternalServerError, `{"error": "Failed to parse AI response", "raw": "not json"}`, "Failed to parse AI response"},
		{"missing analysis", http.StatusOK, `{}`, "AI response missing analysis"},
		{"malformed json", http.StatusOK, `{"ai_analysis": [}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, AIPlanPath, tt.status, tt.body)
			c, err := New(srv.URL)
			require.NoError(t, err)

			analysis, err := c.GenerateAIPlan(context.Background(), testRequest())
			require.Error(t, err)
			assert.Nil(t, analysis)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = c.Calculate(context.Background(), testRequest())
	require.Error(t, err)
	var se *ServiceError
	assert.False(t, errors.As(err, &se))
}

func TestClient_ContextCanceled(t *testing.T) {
	srv, _ := newTestServer(t, CalculatePath, http.StatusOK, `{}`)
	c, err := New(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Calculate(ctx, testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_BaseURLWithPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/planner/api/calculate", r.URL.Path)
		_, _ = io.WriteString(w, `{"timeline_days": 1, "calculations": {"built_up_area_sqft": 9}}`)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL + "/planner/")
	require.NoError(t, err)

	_, err = c.Calculate(context.Background(), testRequest())
	require.NoError(t, err)
}
