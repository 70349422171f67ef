package seed

import workoutModel "github.com/festy23/octofit_tracker/internal/workout/model"

type teamSpec struct {
	name        string
	description string
	heroes      []heroSpec
}

type heroSpec struct {
	name     string
	email    string
	password string
}

// teams lists the demo teams and their heroes in creation order.
var teams = []teamSpec{
	{
		name:        "Team Marvel",
		description: "Earth's Mightiest Heroes united for fitness!",
		heroes: []heroSpec{
			{name: "Iron Man", email: "ironman@marvel.com", password: "arc_reactor_3000"},
			{name: "Captain America", email: "cap@marvel.com", password: "shield_bearer"},
			{name: "Thor", email: "thor@marvel.com", password: "mjolnir_worthy"},
			{name: "Black Widow", email: "blackwidow@marvel.com", password: "red_room_elite"},
			{name: "Hulk", email: "hulk@marvel.com", password: "smash_time"},
		},
	},
	{
		name:        "Team DC",
		description: "Justice League training for peak performance!",
		heroes: []heroSpec{
			{name: "Superman", email: "superman@dc.com", password: "krypton_son"},
			{name: "Batman", email: "batman@dc.com", password: "dark_knight"},
			{name: "Wonder Woman", email: "wonderwoman@dc.com", password: "amazon_warrior"},
			{name: "Flash", email: "flash@dc.com", password: "speed_force"},
			{name: "Aquaman", email: "aquaman@dc.com", password: "atlantis_king"},
		},
	},
}

// activityTypes is the rotation used for generated activities.
var activityTypes = []string{"Running", "Cycling", "Swimming", "Weightlifting", "Yoga", "Boxing"}

// distanceTypes are the activity types that record a distance.
var distanceTypes = map[string]bool{
	"Running":  true,
	"Cycling":  true,
	"Swimming": true,
}

// daysOfActivity is the number of consecutive days, ending today, logged per user.
const daysOfActivity = 7

func workouts() []workoutModel.Workout {
	return []workoutModel.Workout{
		{
			Name:             "Super Soldier Strength",
			Description:      "Captain America's legendary strength training routine",
			ActivityType:     "Weightlifting",
			Duration:         60,
			Difficulty:       workoutModel.Advanced,
			CaloriesEstimate: 400,
		},
		{
			Name:             "Speed Force Sprint",
			Description:      "Flash-inspired high-intensity interval training",
			ActivityType:     "Running",
			Duration:         30,
			Difficulty:       workoutModel.Intermediate,
			CaloriesEstimate: 350,
		},
		{
			Name:             "Amazonian Warrior Training",
			Description:      "Wonder Woman's combat and flexibility routine",
			ActivityType:     "Yoga",
			Duration:         45,
			Difficulty:       workoutModel.Intermediate,
			CaloriesEstimate: 250,
		},
		{
			Name:             "Asgardian Endurance",
			Description:      "Thor's hammer-swinging cardio blast",
			ActivityType:     "Boxing",
			Duration:         50,
			Difficulty:       workoutModel.Advanced,
			CaloriesEstimate: 450,
		},
		{
			Name:             "Atlantean Aquatics",
			Description:      "Aquaman's underwater swimming mastery",
			ActivityType:     "Swimming",
			Duration:         40,
			Difficulty:       workoutModel.Beginner,
			CaloriesEstimate: 300,
		},
		{
			Name:             "Dark Knight Detective Work",
			Description:      "Batman's stealth and agility training",
			ActivityType:     "Cycling",
			Duration:         55,
			Difficulty:       workoutModel.Advanced,
			CaloriesEstimate: 380,
		},
		{
			Name:             "Widow's Flexibility Flow",
			Description:      "Black Widow's signature flexibility routine",
			ActivityType:     "Yoga",
			Duration:         35,
			Difficulty:       workoutModel.Beginner,
			CaloriesEstimate: 200,
		},
		{
			Name:             "Hulk Smash Power",
			Description:      "Unleash your inner strength with power lifting",
			ActivityType:     "Weightlifting",
			Duration:         45,
			Difficulty:       workoutModel.Advanced,
			CaloriesEstimate: 420,
		},
	}
}
