//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/gymtracker/internal/gymstats"
	"github.com/2beens/gymtracker/internal/gymstats/bodymetrics"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/middleware"
)

func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	method, path, token, contentType string,
	body io.Reader,
) (int, []byte) {
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	if token != "" {
		req.Header.Set(middleware.AuthTokenHeader, token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) getJSON(ctx context.Context, path, token string, target any) {
	status, respBytes := s.doRequest(ctx, "GET", path, token, "", nil)
	s.Require().Equal(http.StatusOK, status, string(respBytes))
	s.Require().NoError(json.Unmarshal(respBytes, target))
}

func (s *IntegrationTestSuite) saveWorkout(ctx context.Context, token string, req workouts.SaveWorkoutRequest) workouts.SaveWorkoutResponse {
	reqJson, err := json.Marshal(req)
	s.Require().NoError(err)

	status, respBytes := s.doRequest(ctx, "POST", "/workouts", token, "application/json", bytes.NewReader(reqJson))
	s.Require().Equal(http.StatusCreated, status, string(respBytes))

	var resp workouts.SaveWorkoutResponse
	s.Require().NoError(json.Unmarshal(respBytes, &resp))
	return resp
}

func (s *IntegrationTestSuite) saveBodyMetric(ctx context.Context, token string, req bodymetrics.SaveBodyMetricRequest) bodymetrics.SaveBodyMetricResponse {
	reqJson, err := json.Marshal(req)
	s.Require().NoError(err)

	status, respBytes := s.doRequest(ctx, "POST", "/metrics/body", token, "application/json", bytes.NewReader(reqJson))
	s.Require().Equal(http.StatusCreated, status, string(respBytes))

	var resp bodymetrics.SaveBodyMetricResponse
	s.Require().NoError(json.Unmarshal(respBytes, &resp))
	return resp
}

func pushDay(date string, benchWeight float64) workouts.SaveWorkoutRequest {
	return workouts.SaveWorkoutRequest{
		Name: "Push Day",
		Date: date,
		Exercises: []gymstats.Exercise{
			{Name: "Bench Press", MuscleGroup: "Chest", Sets: 3, Reps: 5, Weight: benchWeight},
			{Name: "Overhead Press", MuscleGroup: "Shoulders", Sets: 3, Reps: 8, Weight: 40},
		},
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
