package nutrition

import "math"

// Toutes les valeurs numériques sont arrondies à chaque étape de formule
// (arrondi à l'entier le plus proche, demi vers l'extérieur) pour que deux
// appels identiques produisent exactement le même plan.

func round(v float64) int {
	return int(math.Round(v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
