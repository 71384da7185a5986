// Package main fills the database with a few weeks of demo training data for a
// single user and prints a session token that can be used against the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"net"
	"os"
	"time"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/gymstats"
	"github.com/2beens/gymtracker/internal/gymstats/bodymetrics"
	"github.com/2beens/gymtracker/internal/gymstats/storage"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/logging"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

type demoExercise struct {
	name        string
	muscleGroup string
	baseWeight  float64
}

var demoPlan = []struct {
	name      string
	exercises []demoExercise
}{
	{
		name: "Push Day",
		exercises: []demoExercise{
			{"Bench Press", "Chest", 80},
			{"Overhead Press", "Shoulders", 50},
			{"Tricep Dips", "Arms", 20},
		},
	},
	{
		name: "Pull Day",
		exercises: []demoExercise{
			{"Deadlift", "Back", 140},
			{"Barbell Row", "Back", 70},
			{"Bicep Curl", "Arms", 15},
		},
	},
	{
		name: "Leg Day",
		exercises: []demoExercise{
			{"Squat", "Legs", 110},
			{"Leg Press", "Legs", 180},
			{"Plank", "Core", 0},
		},
	},
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	userID := flag.String("user", "", "user id to seed, random if empty")
	weeks := flag.Int("weeks", 6, "number of past weeks to fill")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	// seeding is interactive, so logs always go to stdout
	closeLogs := logging.Setup(logging.LoggerSetupParams{
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})
	defer closeLogs()

	if *userID == "" {
		*userID = "demo-" + gofakeit.Username()
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
		DBUser: cfg.PostgresUser,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.EnsureSchema(ctx, dbPool); err != nil {
		log.Fatalf("ensure schema: %s", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("GYMTRACKER_REDIS_PASS"),
	})
	defer rdb.Close()

	var mirror storage.Mirror
	if cfg.MirrorEnabled {
		mirror = storage.NewRedisMirror(rdb)
	}

	workoutsStore := workouts.NewStore(workouts.NewRepo(dbPool), mirror, cfg.MirrorTimeout.Duration)
	bodyMetricsStore := bodymetrics.NewStore(bodymetrics.NewRepo(dbPool), mirror, cfg.MirrorTimeout.Duration)

	today := gymstats.Day(time.Now())
	start := today.AddDate(0, 0, -7*(*weeks))

	saved := 0
	planIdx := 0
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		// roughly every other day
		if gofakeit.Number(0, 9) < 5 {
			continue
		}

		plan := demoPlan[planIdx%len(demoPlan)]
		planIdx++

		progress := day.Sub(start).Hours() / 24 / 7
		workout := gymstats.Workout{
			UserID: *userID,
			Name:   plan.name,
			Date:   day,
		}
		for _, ex := range plan.exercises {
			weight := 0.0
			if ex.baseWeight > 0 {
				weight = roundToHalf(ex.baseWeight * (1 + 0.02*progress) * gofakeit.Float64Range(0.95, 1.05))
			}
			workout.Exercises = append(workout.Exercises, gymstats.Exercise{
				Name:        ex.name,
				MuscleGroup: ex.muscleGroup,
				Sets:        gofakeit.Number(3, 5),
				Reps:        gofakeit.Number(5, 12),
				Weight:      weight,
			})
		}

		result, err := workoutsStore.Save(ctx, workout)
		if err != nil {
			log.Fatalf("save workout [%s] on %s: %s", plan.name, day.Format(gymstats.DateLayout), err)
		}
		log.Debugf("saved workout [%s] on %s: %s", plan.name, day.Format(gymstats.DateLayout), result.Outcome)
		saved++
	}

	weight := gofakeit.Float64Range(75, 90)
	bodyFat := gofakeit.Float64Range(15, 22)
	for day := start; !day.After(today); day = day.AddDate(0, 0, 7) {
		w := roundToHalf(weight)
		bf := math.Round(bodyFat*10) / 10
		if _, err := bodyMetricsStore.Save(ctx, gymstats.BodyMetric{
			UserID:  *userID,
			Date:    day,
			Weight:  &w,
			BodyFat: &bf,
			Notes:   gofakeit.Sentence(4),
		}); err != nil {
			log.Fatalf("save body metric on %s: %s", day.Format(gymstats.DateLayout), err)
		}
		weight -= gofakeit.Float64Range(0, 0.6)
		bodyFat -= gofakeit.Float64Range(0, 0.3)
	}

	authService := auth.NewAuthService(cfg.SessionTTL.Duration, rdb)
	token, err := authService.Login(ctx, *userID, time.Now())
	if err != nil {
		log.Fatalf("login demo user: %s", err)
	}

	fmt.Printf("seeded %d workouts for user [%s]\n", saved, *userID)
	fmt.Printf("session token: %s\n", token)
}

func roundToHalf(v float64) float64 {
	return math.Round(v*2) / 2
}
