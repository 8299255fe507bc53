package nutrition

// RefeedMacros sont les grammes du jour de refeed
type RefeedMacros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// Refeed est une journée haute en glucides qui interrompt périodiquement
// un déficit calorique (relance leptine/métabolisme)
type Refeed struct {
	Calories  int          `json:"calories"`
	Macros    RefeedMacros `json:"macros"`
	Frequency string       `json:"frequency"`
	Timing    string       `json:"timing"`
	Notes     string       `json:"notes"`
	Benefits  []string     `json:"benefits"`
}

// CalculateRefeed calcule le jour de refeed : maintenance + 200 kcal.
// Protéines et lipides sont calibrés sur la journée de déficit normale
// (25% et 20% de ses calories), et tout le surplus du jour de refeed part
// en glucides.
func CalculateRefeed(baseTDEE, currentDeficit int) Refeed {
	refeedCalories := round(float64(baseTDEE) + 200)
	deficitDayCalories := round(float64(baseTDEE) + float64(currentDeficit))

	protein := round(float64(deficitDayCalories) * 0.25 / 4)
	fats := round(float64(deficitDayCalories) * 0.20 / 9)

	carbsCal := refeedCalories - protein*4 - fats*9
	carbs := round(float64(carbsCal) / 4)

	return Refeed{
		Calories: refeedCalories,
		Macros: RefeedMacros{
			Protein: protein,
			Carbs:   carbs,
			Fats:    fats,
		},
		Frequency: "weekly",
		Timing:    "Jour d'entraînement intense",
		Notes:     "Sources glucides saines (riz, patates, fruits)",
		Benefits: []string{
			"Relance métabolisme (leptine)",
			"Boost mental et motivation",
			"Reconstitution glycogène",
			"Amélioration performance",
		},
	}
}
