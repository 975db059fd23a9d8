package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/players/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/players/teams/{team}", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /api/players/nationalities", handler.ListNationalities)
	mux.HandleFunc("GET /api/players/nationalities/{country}", handler.ListPlayersByNationality)
	mux.HandleFunc("GET /api/players/positions", handler.ListPositions)
	mux.HandleFunc("GET /api/players/positions/{position}", handler.ListPlayersByPosition)
	mux.HandleFunc("GET /api/players/leaderboard", handler.Leaderboard)
	mux.HandleFunc("GET /api/players/filter", handler.FilterPlayers)
	mux.HandleFunc("GET /api/players/search", handler.SearchPlayers)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /api/players/{id}", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayer)))
	mux.Handle("GET /api/user/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMe)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, RequireAdmin(handler.adminGuard, h))
	}

	mux.Handle("POST /api/players", admin(handler.CreatePlayer))
	mux.Handle("PUT /api/players/{id}", admin(handler.UpdatePlayer))
	mux.Handle("PATCH /api/players/{id}", admin(handler.PatchPlayer))
	mux.Handle("DELETE /api/players/{id}", admin(handler.DeletePlayer))
}
