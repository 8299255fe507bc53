package nutrition

import (
	"sort"
	"strings"

	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
)

// Supplement est une recommandation de supplémentation avec son niveau de
// preuve et son score de priorité
type Supplement struct {
	Name     string           `json:"name"`
	Dosage   string           `json:"dosage"`
	Timing   string           `json:"timing"`
	Reason   string           `json:"reason"`
	Evidence string           `json:"evidence"`
	Cost     model.BudgetTier `json:"cost"`
	Priority int              `json:"priority"`
}

// SupplementPlan sépare les essentiels (pour tous) des bénéfiques (selon
// objectif, triés par priorité et filtrés par budget)
type SupplementPlan struct {
	Essential  []Supplement `json:"essential"`
	Beneficial []Supplement `json:"beneficial"`
}

// Essentiels, inclus quel que soit l'objectif
var essentialSupplements = []Supplement{
	{
		Name:     "Vitamine D3",
		Dosage:   "2000-4000 UI/jour",
		Timing:   "Matin avec repas gras",
		Reason:   "Carence tres frequente. Essentielle pour hormones, os, immunite, performance",
		Evidence: "Fort (Meta-analyses)",
		Cost:     model.BudgetLow,
		Priority: 100,
	},
	{
		Name:     "Omega-3 (EPA/DHA)",
		Dosage:   "2-3g/jour (dont 1g EPA)",
		Timing:   "Avec repas",
		Reason:   "Reduit inflammation, ameliore recuperation, sante cardiovasculaire",
		Evidence: "Fort",
		Cost:     model.BudgetMedium,
		Priority: 95,
	},
}

var massStrengthSupplements = []Supplement{
	{
		Name:     "Creatine monohydrate",
		Dosage:   "5g/jour",
		Timing:   "Quotidien (peu importe l'heure)",
		Reason:   "+5-15% force, +1-2kg masse musculaire, ameliore recuperation",
		Evidence: "Tres fort (supplement le plus etudie)",
		Cost:     model.BudgetLow,
		Priority: 95,
	},
	{
		Name:     "Whey Proteine",
		Dosage:   "25-40g post-entrainement",
		Timing:   "0-2h post-workout",
		Reason:   "Atteindre quota proteines facilement, absorption rapide",
		Evidence: "Fort",
		Cost:     model.BudgetMedium,
		Priority: 75,
	},
	{
		Name:     "Beta-Alanine",
		Dosage:   "3-6g/jour",
		Timing:   "Repartir dans la journee",
		Reason:   "Reduit fatigue musculaire, +2-3 reps par serie",
		Evidence: "Moyen-Fort",
		Cost:     model.BudgetMedium,
		Priority: 65,
	},
	{
		Name:     "Citrulline Malate",
		Dosage:   "6-8g pre-workout",
		Timing:   "30-60min avant entrainement",
		Reason:   "Ameliore pump, reduit fatigue, +1-2 reps",
		Evidence: "Moyen",
		Cost:     model.BudgetMedium,
		Priority: 55,
	},
}

// L-Carnitine volontairement omise : peu d'évidence scientifique hors
// déficience (rare chez omnivores)
var cuttingSupplements = []Supplement{
	{
		Name:     "Cafeine",
		Dosage:   "200-400mg",
		Timing:   "Pre-workout (avant 16h)",
		Reason:   "+3-5% depense energetique, reduit appetit, ameliore focus",
		Evidence: "Fort",
		Cost:     model.BudgetLow,
		Priority: 80,
	},
	{
		Name:     "Whey Proteine",
		Dosage:   "25-40g par collation",
		Timing:   "Entre repas ou post-workout",
		Reason:   "Preserve muscle en deficit, augmente satiete",
		Evidence: "Fort",
		Cost:     model.BudgetMedium,
		Priority: 75,
	},
	{
		Name:     "Extrait de The Vert (EGCG)",
		Dosage:   "400-500mg EGCG/jour",
		Timing:   "Matin et midi",
		Reason:   "Leger effet thermogenique (+3-4% metabolisme)",
		Evidence: "Moyen",
		Cost:     model.BudgetLow,
		Priority: 50,
	},
}

var enduranceSupplements = []Supplement{
	{
		Name:     "Beta-Alanine",
		Dosage:   "3-6g/jour",
		Timing:   "Repartir dans la journee",
		Reason:   "Ameliore capacite tampon, retarde fatigue sur efforts >60sec",
		Evidence: "Fort",
		Cost:     model.BudgetMedium,
		Priority: 85,
	},
	{
		Name:     "Sodium (electrolytes)",
		Dosage:   "500-1000mg/heure effort",
		Timing:   "Pendant entrainement >60min",
		Reason:   "Previent crampes, maintient hydratation",
		Evidence: "Fort",
		Cost:     model.BudgetLow,
		Priority: 80,
	},
	{
		Name:     "Cafeine",
		Dosage:   "3-6mg/kg (200-400mg)",
		Timing:   "45-60min avant effort",
		Reason:   "Ameliore endurance, reduit perception effort",
		Evidence: "Tres fort",
		Cost:     model.BudgetLow,
		Priority: 75,
	},
	{
		Name:     "Nitrate (jus betterave)",
		Dosage:   "500mg nitrate (500ml jus)",
		Timing:   "2-3h avant effort",
		Reason:   "Ameliore efficacite oxygene, -2-3% temps sur effort",
		Evidence: "Moyen-Fort",
		Cost:     model.BudgetMedium,
		Priority: 60,
	},
}

var crossfitSupplements = []Supplement{
	{
		Name:     "Creatine monohydrate",
		Dosage:   "5g/jour",
		Timing:   "Quotidien",
		Reason:   "Ameliore puissance repetee, recuperation inter-serie",
		Evidence: "Tres fort",
		Cost:     model.BudgetLow,
		Priority: 90,
	},
	{
		Name:     "Beta-Alanine",
		Dosage:   "3-6g/jour",
		Timing:   "Repartir dans la journee",
		Reason:   "Retarde fatigue sur WODs intenses",
		Evidence: "Fort",
		Cost:     model.BudgetMedium,
		Priority: 80,
	},
	{
		Name:     "Cafeine",
		Dosage:   "200-400mg",
		Timing:   "Pre-WOD (avant 16h)",
		Reason:   "Focus mental, ameliore force et endurance",
		Evidence: "Fort",
		Cost:     model.BudgetLow,
		Priority: 75,
	},
	{
		Name:     "Whey Proteine",
		Dosage:   "25-40g",
		Timing:   "Post-WOD",
		Reason:   "Accelere recuperation musculaire",
		Evidence: "Fort",
		Cost:     model.BudgetMedium,
		Priority: 70,
	},
}

var maintenanceSupplements = []Supplement{
	{
		Name:     "Magnesium (bisglycinate)",
		Dosage:   "300-400mg/jour",
		Timing:   "Soir avant coucher",
		Reason:   "Ameliore sommeil, reduit crampes, recuperation",
		Evidence: "Fort",
		Cost:     model.BudgetLow,
		Priority: 70,
	},
	{
		Name:     "Zinc",
		Dosage:   "15-30mg/jour",
		Timing:   "Soir avec repas",
		Reason:   "Soutient testosterone, immunite, recuperation",
		Evidence: "Moyen",
		Cost:     model.BudgetLow,
		Priority: 60,
	},
}

var fallbackWhey = Supplement{
	Name:     "Whey Proteine",
	Dosage:   "25-40g/portion",
	Timing:   "Post-workout ou collation",
	Reason:   "Facilite atteinte des besoins proteiques",
	Evidence: "Fort",
	Cost:     model.BudgetMedium,
	Priority: 65,
}

var fallbackMagnesium = Supplement{
	Name:     "Magnesium (bisglycinate)",
	Dosage:   "300-400mg/jour",
	Timing:   "Soir avant coucher",
	Reason:   "Ameliore qualite sommeil, reduit crampes",
	Evidence: "Fort",
	Cost:     model.BudgetLow,
	Priority: 60,
}

// RecommendSupplements construit la liste priorisée pour un objectif
// canonique. Règles objectif puis compléments universels (whey, magnésium)
// si absents ; tri décroissant par priorité ; filtrage par budget :
// low = uniquement coût bas (top 3), medium = top 5, high = tout.
func RecommendSupplements(objective string, diet string, budget model.BudgetTier) SupplementPlan {
	policy, err := LookupObjective(objective)
	if err != nil {
		// Objectif inconnu à ce stade : liste générique (essentiels +
		// compléments universels). Le composeur de plan a déjà validé
		// l'objectif en amont.
		policy = ObjectivePolicy{Key: ""}
	}

	var beneficial []Supplement
	switch policy.Key {
	case "mass_gain", "performance_strength":
		beneficial = append(beneficial, massStrengthSupplements...)
	case "cutting", "weight_loss":
		beneficial = append(beneficial, cuttingSupplements...)
	case "performance_endurance":
		beneficial = append(beneficial, enduranceSupplements...)
	case "performance_crossfit":
		beneficial = append(beneficial, crossfitSupplements...)
	case "maintenance", "general_health":
		beneficial = append(beneficial, maintenanceSupplements...)
	}

	// Compléments universels, sauf déjà présents
	if !containsSupplement(beneficial, "Whey") && policy.Key != "general_health" {
		beneficial = append(beneficial, fallbackWhey)
	}
	if !containsSupplement(beneficial, "Magnesium") {
		beneficial = append(beneficial, fallbackMagnesium)
	}

	sort.SliceStable(beneficial, func(i, j int) bool {
		return beneficial[i].Priority > beneficial[j].Priority
	})

	essential := make([]Supplement, len(essentialSupplements))
	copy(essential, essentialSupplements)

	switch normalizeBudget(budget) {
	case model.BudgetLow:
		lowCost := make([]Supplement, 0, len(beneficial))
		for _, s := range beneficial {
			if s.Cost == model.BudgetLow {
				lowCost = append(lowCost, s)
			}
		}
		beneficial = truncateSupplements(lowCost, 3)
	case model.BudgetMedium:
		beneficial = truncateSupplements(beneficial, 5)
	}

	return SupplementPlan{Essential: essential, Beneficial: beneficial}
}

// Budget absent : medium. Valeur inconnue : pas de filtre (comportement
// budget high).
func normalizeBudget(budget model.BudgetTier) model.BudgetTier {
	if budget == "" {
		return model.BudgetMedium
	}
	return budget
}

func containsSupplement(list []Supplement, namePart string) bool {
	for _, s := range list {
		if strings.Contains(s.Name, namePart) {
			return true
		}
	}
	return false
}

func truncateSupplements(list []Supplement, max int) []Supplement {
	if len(list) > max {
		return list[:max]
	}
	return list
}
