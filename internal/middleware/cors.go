package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSMiddleware autorise les appels du portail web et de l'app mobile
func CORSMiddleware(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return c.Handler(next)
}
