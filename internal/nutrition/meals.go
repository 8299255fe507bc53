package nutrition

// MealType identifie un créneau repas de la journée
type MealType string

const (
	MealBreakfast      MealType = "breakfast"
	MealMorningSnack   MealType = "morning_snack"
	MealLunch          MealType = "lunch"
	MealSnack          MealType = "snack"
	MealAfternoonSnack MealType = "afternoon_snack"
	MealDinner         MealType = "dinner"
	MealEveningSnack   MealType = "evening_snack"
)

// MealMacros sont les grammes et calories d'un créneau
type MealMacros struct {
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
	Calories int `json:"calories"`
}

// Meal est un créneau repas avec ses macros et sa fenêtre horaire
type Meal struct {
	Type   MealType   `json:"type"`
	Timing string     `json:"timing"`
	Macros MealMacros `json:"macros"`
}

// Créneaux par nombre de repas quotidiens
var mealTypesByCount = map[int][]MealType{
	3: {MealBreakfast, MealLunch, MealDinner},
	4: {MealBreakfast, MealLunch, MealSnack, MealDinner},
	5: {MealBreakfast, MealMorningSnack, MealLunch, MealAfternoonSnack, MealDinner},
	6: {MealBreakfast, MealMorningSnack, MealLunch, MealAfternoonSnack, MealDinner, MealEveningSnack},
}

// Multiplicateurs glucides/lipides par créneau. Les protéines sont
// réparties uniformément ; les glucides sont concentrés sur le matin et le
// déjeuner, les lipides sur le soir (satiété, caséine).
type mealAdjustment struct {
	carbs float64
	fats  float64
}

var mealAdjustments = map[MealType]mealAdjustment{
	MealBreakfast:      {carbs: 1.2, fats: 0.8},
	MealMorningSnack:   {carbs: 0.8, fats: 1.0},
	MealLunch:          {carbs: 1.3, fats: 1.0},
	MealSnack:          {carbs: 1.2, fats: 0.6},
	MealAfternoonSnack: {carbs: 1.2, fats: 0.6},
	MealDinner:         {carbs: 0.9, fats: 1.2},
	MealEveningSnack:   {carbs: 0.5, fats: 1.3},
}

var mealTimings = map[MealType]string{
	MealBreakfast:      "7h-9h",
	MealMorningSnack:   "10h-11h",
	MealLunch:          "12h-14h",
	MealSnack:          "16h-17h",
	MealAfternoonSnack: "16h-17h",
	MealDinner:         "19h-21h",
	MealEveningSnack:   "22h-23h",
}

// DistributeMacrosOverDay répartit les macros journalières sur les
// créneaux repas. Après application des multiplicateurs, le résidu
// (cible − somme répartie) est reporté sur le déjeuner, repas principal,
// pour que la journée retombe exactement sur les totaux.
func DistributeMacrosOverDay(total MacroSet, mealsPerDay int, trainingTime string) []Meal {
	mealTypes, ok := mealTypesByCount[mealsPerDay]
	if !ok {
		mealTypes = mealTypesByCount[4]
		mealsPerDay = 4
	}

	proteinPerMeal := round(float64(total.Protein.Grams) / float64(mealsPerDay))
	carbsPerMeal := round(float64(total.Carbs.Grams) / float64(mealsPerDay))
	fatsPerMeal := round(float64(total.Fats.Grams) / float64(mealsPerDay))

	meals := make([]Meal, 0, mealsPerDay)
	for _, mealType := range mealTypes {
		adj, ok := mealAdjustments[mealType]
		if !ok {
			adj = mealAdjustment{carbs: 1.0, fats: 1.0}
		}

		macros := MealMacros{
			Protein: proteinPerMeal,
			Carbs:   round(float64(carbsPerMeal) * adj.carbs),
			Fats:    round(float64(fatsPerMeal) * adj.fats),
		}
		macros.Calories = mealCalories(macros)

		timing := mealTimings[mealType]
		if timing == "" {
			timing = "Variable"
		}

		meals = append(meals, Meal{
			Type:   mealType,
			Timing: timing,
			Macros: macros,
		})
	}

	return adjustMealTotals(meals, total)
}

// adjustMealTotals reporte le résidu d'arrondi sur le déjeuner et
// recalcule ses calories, garantissant la réconciliation exacte des
// totaux journaliers
func adjustMealTotals(meals []Meal, target MacroSet) []Meal {
	var protein, carbs, fats int
	lunchIndex := -1
	for i, meal := range meals {
		protein += meal.Macros.Protein
		carbs += meal.Macros.Carbs
		fats += meal.Macros.Fats
		if meal.Type == MealLunch {
			lunchIndex = i
		}
	}

	if lunchIndex >= 0 {
		lunch := &meals[lunchIndex]
		lunch.Macros.Protein += target.Protein.Grams - protein
		lunch.Macros.Carbs += target.Carbs.Grams - carbs
		lunch.Macros.Fats += target.Fats.Grams - fats
		lunch.Macros.Calories = mealCalories(lunch.Macros)
	}

	return meals
}

func mealCalories(m MealMacros) int {
	return m.Protein*4 + m.Carbs*4 + m.Fats*9
}
