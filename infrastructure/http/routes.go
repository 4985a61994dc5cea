package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/MannavaSravanthi/user-management-ui/frontend/home"
	"github.com/MannavaSravanthi/user-management-ui/frontend/login"
	"github.com/MannavaSravanthi/user-management-ui/frontend/signup"
	"github.com/MannavaSravanthi/user-management-ui/frontend/users"
)

// RegisterAuthRoutes registers the routes reachable without a credential.
func (s *Server) RegisterAuthRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler(s.API, s.Log))
	s.router.Post("/login", login.CreateLoginHandler(s.API, s.Sessions, s.Log))
	s.router.Post("/logout", login.LogoutHandler(s.Sessions, s.Directories))
	s.router.Get("/signup", signup.GetSignupScreenHandler())
	s.router.Post("/signup", signup.CreateSignupHandler(s.API, s.Forms, s.Log))
}

// RegisterConsoleRoutes registers the guarded console. Mutation routes sit
// behind a second gate that requires the admin role.
func (s *Server) RegisterConsoleRoutes() {
	s.router.Group(func(r chi.Router) {
		r.Use(s.Guard)

		r.Get("/", home.HomePageHandler())
		r.Get("/users", users.UsersPageQueryHandler(s.Directories))

		r.Group(func(r chi.Router) {
			r.Use(s.RequireAdmin)

			r.Get("/users/new", users.CreateUserPageHandler())
			r.Post("/users/new", users.CreateUserCommandHandler(s.API, s.Forms, s.Audit, s.Log))
			r.Get("/users/{id}/edit", users.EditUserPageHandler(s.Directories))
			r.Post("/users/{id}/edit", users.UpdateUserCommandHandler(s.API, s.Directories, s.Forms, s.Audit, s.Log))
			r.Get("/users/{id}/delete", users.DeleteUserPageHandler(s.Directories))
			r.Post("/users/{id}/delete", users.DeleteUserCommandHandler(s.API, s.Directories, s.Audit, s.Log))
		})
	})
}
