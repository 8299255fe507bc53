package services

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/MassBabyGeek/NutriPlan-backend/internal/logger"
	model "github.com/MassBabyGeek/NutriPlan-backend/internal/models"
	"github.com/MassBabyGeek/NutriPlan-backend/internal/nutrition"
	"github.com/coocood/freecache"
)

// planCacheSize taille mémoire du cache de plans (8 Mo)
const planCacheSize = 8 * 1024 * 1024

// planCacheTTL durée de vie d'une entrée en secondes (1h). Le moteur est
// déterministe : seul un changement de profil ou de requête invalide le
// résultat, et la clé couvre les deux.
const planCacheTTL = 3600

// PlanCache mémorise les plans générés, indexés par empreinte du couple
// (profil membre, requête). Deux requêtes identiques sur un profil
// inchangé retournent le même plan sans recalcul.
type PlanCache struct {
	cache *freecache.Cache
}

func NewPlanCache() *PlanCache {
	return &PlanCache{cache: freecache.NewCache(planCacheSize)}
}

// Key calcule l'empreinte SHA-256 du profil et de la requête
func (pc *PlanCache) Key(member *model.MemberProfile, req *model.PlanRequest) []byte {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(member)
	_ = enc.Encode(req)
	return h.Sum(nil)
}

// Get retourne le plan mémorisé pour cette clé, ou false
func (pc *PlanCache) Get(key []byte) (*nutrition.CompletePlan, bool) {
	raw, err := pc.cache.Get(key)
	if err != nil {
		return nil, false
	}

	var plan nutrition.CompletePlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		logger.Warning("plan cache: entrée corrompue, ignorée: %v", err)
		return nil, false
	}
	return &plan, true
}

// Set mémorise un plan généré
func (pc *PlanCache) Set(key []byte, plan *nutrition.CompletePlan) {
	raw, err := json.Marshal(plan)
	if err != nil {
		return
	}
	if err := pc.cache.Set(key, raw, planCacheTTL); err != nil {
		logger.Warning("plan cache: écriture impossible: %v", err)
	}
}
