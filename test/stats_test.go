//go:build integration

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
	"github.com/2beens/gymtracker/internal/gymstats/analytics"
	"github.com/2beens/gymtracker/internal/gymstats/trends"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
)

func (s *IntegrationTestSuite) TestStats_DashboardAndRecords() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	today := gymstats.Day(time.Now())
	s.saveWorkout(ctx, s.token, pushDay(today.AddDate(0, 0, -2).Format(gymstats.DateLayout), 100))
	s.saveWorkout(ctx, s.token, pushDay(today.Format(gymstats.DateLayout), 105))
	s.saveWorkout(ctx, s.token, workouts.SaveWorkoutRequest{
		Name: "Leg Day",
		Date: today.AddDate(0, 0, -1).Format(gymstats.DateLayout),
		Exercises: []gymstats.Exercise{
			{Name: "Squat", MuscleGroup: "Legs", Sets: 5, Reps: 5, Weight: 120},
		},
	})

	var dashboard analytics.DashboardResponse
	s.getJSON(ctx, "/stats/dashboard", s.token, &dashboard)
	s.Equal(3, dashboard.Stats.TotalWorkouts)
	s.Equal(trends.WeeklyGoal, dashboard.Stats.WeeklyGoal)
	s.NotEmpty(dashboard.Activity)

	var recs analytics.RecordsResponse
	s.getJSON(ctx, "/stats/records", s.token, &recs)
	s.Require().Len(recs.Records, 3)
	s.Equal(3, recs.Summary.TotalExercises)
	s.Equal(120.0, recs.Summary.HeaviestWeight)

	var bench float64
	for _, r := range recs.Records {
		if r.ExerciseName == "Bench Press" {
			bench = r.MaxWeight.Weight
			s.Equal(2, r.TotalSessions)
		}
	}
	s.Equal(105.0, bench)

	// a new workout has to show up in the records right away
	s.saveWorkout(ctx, s.token, pushDay(today.Format(gymstats.DateLayout), 110))
	s.getJSON(ctx, "/stats/records?muscle_group=Chest", s.token, &recs)
	s.Equal("Chest", recs.MuscleGroup)
	s.Require().Len(recs.Records, 1)
	s.Equal(110.0, recs.Records[0].MaxWeight.Weight)

	var recent analytics.RecentRecordsResponse
	s.getJSON(ctx, "/stats/records/recent", s.token, &recent)
	s.Equal(3, recent.Total)

	var otherDashboard analytics.DashboardResponse
	s.getJSON(ctx, "/stats/dashboard", s.otherToken, &otherDashboard)
	s.Equal(0, otherDashboard.Stats.TotalWorkouts)
}

func (s *IntegrationTestSuite) TestStats_MuscleGroupsProgressCalendar() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	today := gymstats.Day(time.Now())
	s.saveWorkout(ctx, s.token, pushDay(today.AddDate(0, 0, -3).Format(gymstats.DateLayout), 100))
	s.saveWorkout(ctx, s.token, pushDay(today.Format(gymstats.DateLayout), 102.5))

	var groups analytics.MuscleGroupsResponse
	s.getJSON(ctx, "/stats/muscle-groups?days=7", s.token, &groups)
	s.Equal(7, groups.Days)
	s.Equal("Chest", groups.MostTrained)
	s.Len(groups.Groups, 2)

	status, _ := s.doRequest(ctx, "GET", "/stats/muscle-groups?days=-1", s.token, "", nil)
	s.Equal(http.StatusBadRequest, status)

	var progress analytics.ProgressResponse
	s.getJSON(ctx, "/stats/progress?exercise=bench+press&days=30", s.token, &progress)
	s.Len(progress.Points, 2)
	s.Contains(progress.Exercises, "Bench Press")

	status, _ = s.doRequest(ctx, "GET", "/stats/progress?days=45", s.token, "", nil)
	s.Equal(http.StatusBadRequest, status)

	var calendar trends.CalendarMonth
	s.getJSON(ctx, fmt.Sprintf("/stats/calendar/%d/%d", today.Year(), int(today.Month())), s.token, &calendar)
	s.Equal(today.Year(), calendar.Year)
	s.GreaterOrEqual(calendar.Stats.TotalWorkouts, 1)

	status, _ = s.doRequest(ctx, "GET", fmt.Sprintf("/stats/calendar/%d/13", today.Year()), s.token, "", nil)
	s.Equal(http.StatusBadRequest, status)
}
