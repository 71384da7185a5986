//go:build integration

package test

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
	"github.com/2beens/gymtracker/internal/gymstats/storage"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
)

func (s *IntegrationTestSuite) TestWorkouts_SaveAndList() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	saved := s.saveWorkout(ctx, s.token, pushDay("2024-01-15", 100))
	s.Equal(testUserID, saved.Workout.UserID)
	s.Equal(1500.0, saved.Workout.Exercises[0].Volume)
	s.Equal(1500.0+960.0, saved.Workout.TotalVolume)
	s.Require().NotNil(saved.Result)
	s.Equal(storage.OutcomePersistedAndMirrored, saved.Result.Outcome)

	var rows int
	s.Require().NoError(s.DB.QueryRow("SELECT count(*) FROM workout WHERE user_id = $1", testUserID).Scan(&rows))
	s.Equal(1, rows)

	mirrored, err := storage.NewRedisMirror(s.redisClient).List(ctx, testUserID, storage.CollectionWorkouts)
	s.Require().NoError(err)
	s.Contains(mirrored, saved.Workout.ID)

	s.saveWorkout(ctx, s.token, pushDay("2024-01-18", 102.5))

	var list workouts.ListResponse
	s.getJSON(ctx, "/workouts", s.token, &list)
	s.Require().Equal(2, list.Total)
	s.Equal("2024-01-18", list.Workouts[0].Date.Format(gymstats.DateLayout))
	s.Equal("2024-01-15", list.Workouts[1].Date.Format(gymstats.DateLayout))

	var otherList workouts.ListResponse
	s.getJSON(ctx, "/workouts", s.otherToken, &otherList)
	s.Equal(0, otherList.Total)
}

func (s *IntegrationTestSuite) TestWorkouts_EmptyDateMeansToday() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	saved := s.saveWorkout(ctx, s.token, pushDay("", 90))
	s.Equal(time.Now().UTC().Format(gymstats.DateLayout), saved.Workout.Date.Format(gymstats.DateLayout))
}

func (s *IntegrationTestSuite) TestWorkouts_Invalid() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, body := range []string{
		`{"name":"Push Day","date":"2024-01-15","exercises":[]}`,
		`{"name":"Push Day","date":"15/01/2024","exercises":[{"name":"Bench Press","sets":3,"reps":5,"weight":100}]}`,
		`{"name":"Push Day","date":"2024-01-15","exercises":[{"name":"Bench Press","sets":3,"reps":50,"weight":100}]}`,
		`not json`,
	} {
		status, respBytes := s.doRequest(ctx, "POST", "/workouts", s.token, "application/json", bytes.NewBufferString(body))
		s.Equal(http.StatusBadRequest, status, string(respBytes))
	}

	var rows int
	s.Require().NoError(s.DB.QueryRow("SELECT count(*) FROM workout").Scan(&rows))
	s.Equal(0, rows)
}

func (s *IntegrationTestSuite) TestWorkouts_Unauthorized() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, _ := s.doRequest(ctx, "GET", "/workouts", "", "", nil)
	s.Equal(http.StatusUnauthorized, status)

	status, _ = s.doRequest(ctx, "GET", "/workouts", "not-a-session", "", nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestLogout() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, _ := s.doRequest(ctx, "POST", "/a/logout", s.token, "", nil)
	s.Equal(http.StatusOK, status)

	status, _ = s.doRequest(ctx, "GET", "/workouts", s.token, "", nil)
	s.Equal(http.StatusUnauthorized, status)
}
