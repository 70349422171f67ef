package seed

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	activityModel "github.com/festy23/octofit_tracker/internal/activity/model"
	leaderboardModel "github.com/festy23/octofit_tracker/internal/leaderboard/model"
	teamModel "github.com/festy23/octofit_tracker/internal/team/model"
	userModel "github.com/festy23/octofit_tracker/internal/user/model"
	workoutModel "github.com/festy23/octofit_tracker/internal/workout/model"
)

func TestMain(m *testing.M) {
	userModel.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

var fixedNow = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&teamModel.Team{},
		&userModel.User{},
		&activityModel.Activity{},
		&leaderboardModel.Entry{},
		&workoutModel.Workout{},
	))
	return db
}

func newSeeder(db *gorm.DB) *Seeder {
	return New(db, zap.NewNop().Sugar(), WithClock(func() time.Time { return fixedNow }))
}

func TestSeeder_Run_Counts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seeder := newSeeder(db)
	succeeded := testutil.ToFloat64(runsCounter.WithLabelValues("succeeded"))

	expected := &Result{Teams: 2, Users: 10, Activities: 70, Leaderboard: 10, Workouts: 8}
	for run := 1; run <= 2; run++ {
		result, err := seeder.Run(ctx)

		require.NoError(t, err, "run %d", run)
		assert.Equal(t, expected, result, "run %d", run)
	}

	assert.InDelta(t, succeeded+2, testutil.ToFloat64(runsCounter.WithLabelValues("succeeded")), 0)
}

func TestSeeder_Run_ReplacesExistingData(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	stray := "Team Stray"
	require.NoError(t, db.Create(&userModel.User{Name: "Stray", Email: "stray@x.com", Password: "h", Team: &stray}).Error)
	require.NoError(t, db.Create(&teamModel.Team{Name: stray}).Error)

	_, err := newSeeder(db).Run(ctx)
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&userModel.User{}).Where("email = ?", "stray@x.com").Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&teamModel.Team{}).Where("name = ?", stray).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSeeder_Run_TeamsAndUsers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	_, err := newSeeder(db).Run(ctx)
	require.NoError(t, err)

	var teams []teamModel.Team
	require.NoError(t, db.Order("id ASC").Find(&teams).Error)
	require.Len(t, teams, 2)
	assert.Equal(t, "Team Marvel", teams[0].Name)
	assert.Equal(t, []string{
		"ironman@marvel.com", "cap@marvel.com", "thor@marvel.com", "blackwidow@marvel.com", "hulk@marvel.com",
	}, teams[0].Members)
	assert.Equal(t, "Team DC", teams[1].Name)
	assert.Len(t, teams[1].Members, 5)

	var batman userModel.User
	require.NoError(t, db.Where("email = ?", "batman@dc.com").First(&batman).Error)
	require.NotNil(t, batman.Team)
	assert.Equal(t, "Team DC", *batman.Team)
	assert.True(t, batman.CheckPassword("dark_knight"))
}

func TestSeeder_Run_Activities(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	_, err := newSeeder(db).Run(ctx)
	require.NoError(t, err)

	var activities []activityModel.Activity
	require.NoError(t, db.Find(&activities).Error)
	require.Len(t, activities, 70)

	for _, a := range activities {
		if distanceTypes[a.ActivityType] {
			assert.NotNil(t, a.Distance, "%s should have a distance", a.ActivityType)
		} else {
			assert.Nil(t, a.Distance, "%s should not have a distance", a.ActivityType)
		}
	}

	// Iron Man is user 0: today is Running, yesterday Cycling.
	var ironman []activityModel.Activity
	require.NoError(t, db.Where("user_email = ?", "ironman@marvel.com").Order("date DESC").Find(&ironman).Error)
	require.Len(t, ironman, 7)
	assert.Equal(t, "Running", ironman[0].ActivityType)
	assert.Equal(t, 30, ironman[0].Duration)
	assert.Equal(t, 200, ironman[0].Calories)
	assert.True(t, ironman[0].Date.Equal(fixedNow))
	assert.Equal(t, "Cycling", ironman[1].ActivityType)
	assert.InDelta(t, 5.3, *ironman[1].Distance, 1e-9)
	assert.True(t, ironman[6].Date.Equal(fixedNow.Add(-6*24*time.Hour)))
}

func TestSeeder_Run_Leaderboard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	_, err := newSeeder(db).Run(ctx)
	require.NoError(t, err)

	var entries []leaderboardModel.Entry
	require.NoError(t, db.Order("rank ASC").Find(&entries).Error)
	require.Len(t, entries, 10)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
		assert.Equal(t, daysOfActivity, e.TotalActivities)
	}

	// Rank follows creation order, so the first hero ranks first despite the lowest totals.
	assert.Equal(t, "ironman@marvel.com", entries[0].UserEmail)
	assert.Equal(t, "Iron Man", entries[0].UserName)
	assert.Equal(t, "Team Marvel", entries[0].Team)
	assert.Equal(t, 7*200+10*(0+1+2+3+4+5+6), entries[0].TotalCalories)
	assert.Equal(t, 7*30+2*(0+1+2+3+4+5+6), entries[0].TotalDuration)

	assert.Equal(t, "aquaman@dc.com", entries[9].UserEmail)
	assert.Equal(t, 7*(200+9*20)+210, entries[9].TotalCalories)
	assert.Greater(t, entries[9].TotalCalories, entries[0].TotalCalories)
}

func TestSeeder_Run_Workouts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	_, err := newSeeder(db).Run(ctx)
	require.NoError(t, err)

	var intermediate []workoutModel.Workout
	require.NoError(t, db.Where("difficulty = ?", workoutModel.Intermediate).Order("id ASC").Find(&intermediate).Error)
	require.Len(t, intermediate, 2)
	assert.Equal(t, "Speed Force Sprint", intermediate[0].Name)
	assert.Equal(t, "Amazonian Warrior Training", intermediate[1].Name)
}

func TestSeeder_Run_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	_, err := newSeeder(db).Run(ctx)
	require.NoError(t, err)

	require.NoError(t, db.Migrator().DropTable(&workoutModel.Workout{}))

	_, err = newSeeder(db).Run(ctx)
	require.Error(t, err)

	var users int64
	require.NoError(t, db.Model(&userModel.User{}).Count(&users).Error)
	assert.Equal(t, int64(10), users)
}

func TestGenerateActivities(t *testing.T) {
	users := []*userModel.User{{Email: "a@x.com"}, {Email: "b@x.com"}}

	activities := generateActivities(users, fixedNow)

	require.Len(t, activities, 14)
	// user 1, day 3 -> TYPES[4] = Yoga
	a := activities[1*daysOfActivity+3]
	assert.Equal(t, "b@x.com", a.UserEmail)
	assert.Equal(t, "Yoga", a.ActivityType)
	assert.Equal(t, 30+5+6, a.Duration)
	assert.Equal(t, 200+20+30, a.Calories)
	assert.Nil(t, a.Distance)
}
