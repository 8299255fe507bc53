package nutrition

import (
	"errors"
	"fmt"
)

// ErrUnknownObjective est renvoyée quand l'objectif demandé n'existe pas
// dans la table des politiques. Pas de valeur par défaut ici : substituer
// silencieusement un objectif produirait un plan trompeur.
var ErrUnknownObjective = errors.New("unknown objective")

// MissingDataError signale un champ biométrique requis absent ou invalide.
// L'appelant doit compléter la fiche du membre : aucun plan partiel n'est
// produit.
type MissingDataError struct {
	Field string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing or invalid biometric data: %s", e.Field)
}

func missingData(field string) error {
	return &MissingDataError{Field: field}
}
