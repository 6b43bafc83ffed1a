package middleware

import (
	"slices"

	"github.com/rs/cors"

	"github.com/heartmarshall/travelplan-backend/internal/config"
)

// CORS returns middleware that handles preflight requests and sets CORS
// headers. A wildcard origin disables credentials, which browsers would
// reject anyway.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()
	allowCredentials := cfg.AllowCredentials && !slices.Contains(origins, "*")

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
