// Package seed clears the store and repopulates it with the demo data set:
// two teams of five heroes, a week of activities per hero, a leaderboard and
// the workout catalogue.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	activityModel "github.com/festy23/octofit_tracker/internal/activity/model"
	activityRepo "github.com/festy23/octofit_tracker/internal/activity/repository"
	leaderboardModel "github.com/festy23/octofit_tracker/internal/leaderboard/model"
	leaderboardRepo "github.com/festy23/octofit_tracker/internal/leaderboard/repository"
	teamModel "github.com/festy23/octofit_tracker/internal/team/model"
	teamRepo "github.com/festy23/octofit_tracker/internal/team/repository"
	userModel "github.com/festy23/octofit_tracker/internal/user/model"
	userRepo "github.com/festy23/octofit_tracker/internal/user/repository"
	workoutRepo "github.com/festy23/octofit_tracker/internal/workout/repository"
)

// Result holds the collection counts after a run.
type Result struct {
	Teams       int64 `json:"teams"`
	Users       int64 `json:"users"`
	Activities  int64 `json:"activities"`
	Leaderboard int64 `json:"leaderboard"`
	Workouts    int64 `json:"workouts"`
}

// Seeder populates the store with demo data.
type Seeder struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	now    func() time.Time
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithClock sets the clock used to date generated activities.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

// New creates a new seeder.
func New(db *gorm.DB, logger *zap.SugaredLogger, opts ...Option) *Seeder {
	s := &Seeder{db: db, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// repos is the set of repositories bound to one transaction.
type repos struct {
	teams       teamRepo.Repository
	users       userRepo.Repository
	activities  activityRepo.Repository
	leaderboard leaderboardRepo.Repository
	workouts    workoutRepo.Repository
}

func newRepos(tx *gorm.DB, logger *zap.SugaredLogger) *repos {
	return &repos{
		teams:       teamRepo.New(tx, logger),
		users:       userRepo.New(tx, logger),
		activities:  activityRepo.New(tx, logger),
		leaderboard: leaderboardRepo.New(tx, logger),
		workouts:    workoutRepo.New(tx, logger),
	}
}

// Run clears all five collections and inserts the demo data in one
// transaction. Re-running produces the same counts.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	timer := prometheus.NewTimer(runDuration)
	defer timer.ObserveDuration()

	now := s.now().UTC()
	s.logger.Infow("Seed started", "now", now)

	var result *Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := newRepos(tx, s.logger)

		if err := clearAll(ctx, r); err != nil {
			return fmt.Errorf("clear collections: %w", err)
		}

		users, err := createTeamsAndUsers(ctx, r)
		if err != nil {
			return err
		}

		if err := createActivities(ctx, r, users, now); err != nil {
			return fmt.Errorf("create activities: %w", err)
		}

		if err := createLeaderboard(ctx, r, users); err != nil {
			return fmt.Errorf("create leaderboard: %w", err)
		}

		if err := r.workouts.CreateMany(ctx, workouts()); err != nil {
			return fmt.Errorf("create workouts: %w", err)
		}

		result, err = count(ctx, r)
		return err
	})
	if err != nil {
		runsCounter.WithLabelValues("failed").Inc()
		s.logger.Errorw("Seed failed", "error", err)
		return nil, err
	}

	runsCounter.WithLabelValues("succeeded").Inc()
	recordResult(result)
	s.logger.Infow("Seed completed",
		"teams", result.Teams,
		"users", result.Users,
		"activities", result.Activities,
		"leaderboard", result.Leaderboard,
		"workouts", result.Workouts,
	)
	return result, nil
}

func clearAll(ctx context.Context, r *repos) error {
	deleters := []func(context.Context) (int64, error){
		r.users.DeleteAll,
		r.teams.DeleteAll,
		r.activities.DeleteAll,
		r.leaderboard.DeleteAll,
		r.workouts.DeleteAll,
	}
	for _, deleteAll := range deleters {
		if _, err := deleteAll(ctx); err != nil {
			return err
		}
	}
	return nil
}

// createTeamsAndUsers inserts the teams with empty member lists, then their
// heroes, then stores each team's member emails. Users are returned in
// creation order.
func createTeamsAndUsers(ctx context.Context, r *repos) ([]*userModel.User, error) {
	created := make([]*teamModel.Team, 0, len(teams))
	for _, spec := range teams {
		team := &teamModel.Team{Name: spec.name, Description: spec.description, Members: []string{}}
		if err := r.teams.Create(ctx, team); err != nil {
			return nil, fmt.Errorf("create team %q: %w", spec.name, err)
		}
		created = append(created, team)
	}

	var users []*userModel.User
	for i, spec := range teams {
		team := created[i]
		for _, hero := range spec.heroes {
			hash, err := userModel.HashPassword(hero.password)
			if err != nil {
				return nil, err
			}
			teamName := team.Name
			user := &userModel.User{
				Name:     hero.name,
				Email:    hero.email,
				Password: hash,
				Team:     &teamName,
			}
			if err := r.users.Create(ctx, user); err != nil {
				return nil, fmt.Errorf("create user %q: %w", hero.email, err)
			}
			users = append(users, user)
			team.Members = append(team.Members, user.Email)
		}
	}

	for _, team := range created {
		if err := r.teams.Update(ctx, team); err != nil {
			return nil, fmt.Errorf("update team %q members: %w", team.Name, err)
		}
	}
	return users, nil
}

// generateActivities builds one activity per user per day, today first.
func generateActivities(users []*userModel.User, now time.Time) []activityModel.Activity {
	activities := make([]activityModel.Activity, 0, len(users)*daysOfActivity)
	for i, user := range users {
		for day := 0; day < daysOfActivity; day++ {
			activityType := activityTypes[(i+day)%len(activityTypes)]

			var distance *float64
			if distanceTypes[activityType] {
				d := 5.0 + float64(i)*0.5 + float64(day)*0.3
				distance = &d
			}

			activities = append(activities, activityModel.Activity{
				UserEmail:    user.Email,
				ActivityType: activityType,
				Duration:     30 + i*5 + day*2,
				Distance:     distance,
				Calories:     200 + i*20 + day*10,
				Date:         now.Add(-time.Duration(day) * 24 * time.Hour),
			})
		}
	}
	return activities
}

func createActivities(ctx context.Context, r *repos, users []*userModel.User, now time.Time) error {
	return r.activities.CreateMany(ctx, generateActivities(users, now))
}

// createLeaderboard aggregates each user's stored activities. Rank follows
// user creation order, not performance.
func createLeaderboard(ctx context.Context, r *repos, users []*userModel.User) error {
	entries := make([]leaderboardModel.Entry, 0, len(users))
	for i, user := range users {
		totals, err := r.activities.Totals(ctx, user.Email)
		if err != nil {
			return err
		}

		var team string
		if user.Team != nil {
			team = *user.Team
		}

		entries = append(entries, leaderboardModel.Entry{
			UserEmail:       user.Email,
			UserName:        user.Name,
			Team:            team,
			TotalCalories:   totals.TotalCalories,
			TotalActivities: totals.TotalActivities,
			TotalDuration:   totals.TotalDuration,
			Rank:            i + 1,
		})
	}
	return r.leaderboard.CreateMany(ctx, entries)
}

func count(ctx context.Context, r *repos) (*Result, error) {
	var (
		res Result
		err error
	)
	if res.Teams, err = r.teams.Count(ctx); err != nil {
		return nil, err
	}
	if res.Users, err = r.users.Count(ctx); err != nil {
		return nil, err
	}
	if res.Activities, err = r.activities.Count(ctx); err != nil {
		return nil, err
	}
	if res.Leaderboard, err = r.leaderboard.Count(ctx); err != nil {
		return nil, err
	}
	if res.Workouts, err = r.workouts.Count(ctx); err != nil {
		return nil, err
	}
	return &res, nil
}
