package scoring

// MealType identifies which meal of the day a food entry belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether m is one of the known meal types.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Macros is a calorie and macronutrient total. Calories in kcal, the rest in grams.
type Macros struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
}

// Add returns the element-wise sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

// DayTarget holds the planned intake for a date.
type DayTarget struct {
	Load   Load   `json:"load"`
	Macros Macros `json:"macros"`

	// MinFatKcal overrides the fat floor. Zero means 20% of target calories,
	// capped at the target fat.
	MinFatKcal float64 `json:"minFatKcal,omitempty"`
}

// DayActual holds what was actually eaten on a date.
type DayActual struct {
	Macros         Macros               `json:"macros"`
	Meals          []MealType           `json:"meals"`
	CaloriesByMeal map[MealType]float64 `json:"caloriesByMeal,omitempty"`
}

// PreWindow is the carbohydrate loading window before a session.
type PreWindow struct {
	Applicable  bool    `json:"applicable"`
	TargetCarbs float64 `json:"targetCarbs"`
	ActualCarbs float64 `json:"actualCarbs"`
}

// DuringWindow is the in-session fueling rate, in grams of CHO per hour.
type DuringWindow struct {
	Applicable         bool    `json:"applicable"`
	TargetCarbsPerHour float64 `json:"targetCarbsPerHour"`
	ActualCarbsPerHour float64 `json:"actualCarbsPerHour"`
}

// PostWindow is the recovery window after a session.
type PostWindow struct {
	Applicable    bool    `json:"applicable"`
	TargetCarbs   float64 `json:"targetCarbs"`
	TargetProtein float64 `json:"targetProtein"`
	ActualCarbs   float64 `json:"actualCarbs"`
	ActualProtein float64 `json:"actualProtein"`
}

// Windows groups the three fueling windows of a training day.
type Windows struct {
	Pre    PreWindow    `json:"pre"`
	During DuringWindow `json:"during"`
	Post   PostWindow   `json:"post"`
}

// TrainingContext compares the planned session with what was recorded.
// Intensities are heart-rate zones 1-5, zero when unknown.
type TrainingContext struct {
	PlannedMinutes   float64 `json:"plannedMinutes"`
	ActualMinutes    float64 `json:"actualMinutes"`
	PlannedType      string  `json:"plannedType"`
	ActualType       string  `json:"actualType"`
	PlannedIntensity int     `json:"plannedIntensity"`
	ActualIntensity  int     `json:"actualIntensity"`
	HasHeartRate     bool    `json:"hasHeartRate"`
}

// Flags are day modifiers that only contribute bonuses.
type Flags struct {
	StreakDays   int  `bson:"streakDays" json:"streakDays"`
	HydrationMet bool `bson:"hydrationMet" json:"hydrationMet"`
}

// Context is the complete input of the daily score.
type Context struct {
	Target   DayTarget       `json:"target"`
	Actual   DayActual       `json:"actual"`
	Windows  Windows         `json:"windows"`
	Training TrainingContext `json:"training"`
	Flags    Flags           `json:"flags"`
}
