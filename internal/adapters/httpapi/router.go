package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the API HTTP router.
//
// Public surface: health, login, and user registration. Everything else sits
// behind the token middleware.
func NewRouter(s *Server, authMW func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	// Health endpoint for infra checks; deliberately unauthenticated.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.login)
		api.Post("/usuarios", s.createUser)

		api.Group(func(priv chi.Router) {
			priv.Use(authMW)

			priv.Get("/events", s.streamEvents)

			priv.Get("/usuarios", s.listUsers)
			priv.Get("/usuarios/{id}", s.getUser)
			priv.Put("/usuarios/{id}", s.updateUser)
			priv.Delete("/usuarios/{id}", s.deleteUser)

			priv.Get("/perfiles", s.listProfiles)
			priv.Get("/perfiles/{id}", s.getProfile)
			priv.Post("/perfiles", s.createProfile)
			priv.Put("/perfiles/{id}", s.updateProfile)
			priv.Delete("/perfiles/{id}", s.deleteProfile)

			priv.Get("/tareas", s.listTasks)
			priv.Get("/tareas/{id}", s.getTask)
			priv.Post("/tareas", s.createTask)
			priv.Put("/tareas/{id}", s.updateTask)
			priv.Delete("/tareas/{id}", s.deleteTask)

			priv.Post("/tareas/{id}/etiquetas", s.addTagToTask)
			priv.Delete("/tareas/{id}/etiquetas/{etiquetaID}", s.removeTagFromTask)
			priv.Post("/tareas/{id}/adjuntos", s.uploadAttachment)

			priv.Get("/comentarios", s.listComments)
			priv.Get("/comentarios/{id}", s.getComment)
			priv.Post("/comentarios", s.createComment)
			priv.Put("/comentarios/{id}", s.updateComment)
			priv.Delete("/comentarios/{id}", s.deleteComment)

			priv.Get("/notificaciones", s.listNotifications)
			priv.Get("/notificaciones/{id}", s.getNotification)
			priv.Post("/notificaciones", s.createNotification)
			priv.Put("/notificaciones/{id}", s.updateNotification)
			priv.Delete("/notificaciones/{id}", s.deleteNotification)

			priv.Get("/etiquetas", s.listTags)
			priv.Get("/etiquetas/{id}", s.getTag)
			priv.Post("/etiquetas", s.createTag)
			priv.Put("/etiquetas/{id}", s.updateTag)
			priv.Delete("/etiquetas/{id}", s.deleteTag)

			priv.Get("/adjuntos/{id}", s.getAttachment)
			priv.Delete("/adjuntos/{id}", s.deleteAttachment)

			priv.Get("/boards", s.listBoards)
			priv.Post("/boards", s.createBoard)
			priv.Get("/proyectos", s.listProjects)
			priv.Post("/proyectos", s.createProject)
			priv.Get("/columnas", s.listColumns)
			priv.Post("/columnas", s.createColumn)

			priv.Get("/invitaciones", s.listInvitations)
			priv.Post("/invitaciones", s.createInvitation)
			priv.Get("/asignaciones", s.listAssignments)
			priv.Post("/asignaciones", s.createAssignment)
			priv.Get("/auditoria", s.listAuditLogs)
		})
	})

	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}
