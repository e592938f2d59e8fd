package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/limbo/ascent/internal/service"
)

const defaultAuthRedirect = "/dashboard"

type Server struct {
	mx       *chi.Mux
	identity service.IdentityServiceI
	journeys service.JourneyServiceI
	images   service.ImagesServiceI
	waitlist service.WaitlistServiceI
	admin    service.AdminServiceI
	banners  service.BannerServiceI

	allowedOrigins []string
	authRedirect   string
}

type ServicesList struct {
	IdentityService service.IdentityServiceI
	JourneyService  service.JourneyServiceI
	ImagesService   service.ImagesServiceI
	WaitlistService service.WaitlistServiceI
	AdminService    service.AdminServiceI
	BannerService   service.BannerServiceI

	// Origins allowed by CORS, every origin when empty
	AllowedOrigins []string
	// Where the OAuth callback sends the browser with the token
	AuthRedirect string
}

func New(servicesOptions *ServicesList) *Server {
	origins := servicesOptions.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	redirect := servicesOptions.AuthRedirect
	if redirect == "" {
		redirect = defaultAuthRedirect
	}
	return &Server{
		mx:             chi.NewMux(),
		identity:       servicesOptions.IdentityService,
		journeys:       servicesOptions.JourneyService,
		images:         servicesOptions.ImagesService,
		waitlist:       servicesOptions.WaitlistService,
		admin:          servicesOptions.AdminService,
		banners:        servicesOptions.BannerService,
		allowedOrigins: origins,
		authRedirect:   redirect,
	}
}

func (s *Server) MountEndpoints() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", previewSessionHeader},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", s.SignUp)
		r.Post("/auth/signin", s.SignIn)
		r.Get("/auth/oauth/{provider}", s.OAuthStart)
		r.Get("/auth/oauth/{provider}/callback", s.OAuthCallback)
		r.Post("/waitlist", s.JoinWaitlist)
		r.Get("/public/{username}", s.PublicProfile)
		r.Post("/banners/demo/preview", s.DemoPreview)
		r.Get("/banners/demo/preview", s.DemoLatestPreview)
		r.Post("/banners/demo/export", s.DemoExport)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Post("/auth/signout", s.SignOut)
			r.Post("/auth/refresh", s.Refresh)
			r.Get("/me", s.Me)
			r.Put("/me/theme", s.UpdateTheme)
			r.Get("/plan", s.GetPlan)

			r.Get("/journey", s.GetJourney)
			r.Get("/journey/export", s.ExportJourney)
			r.Post("/mountain", s.CreateMountain)
			r.Patch("/mountain/progress", s.UpdateProgress)
			r.Post("/mountain/share", s.ShareMountain)
			r.Put("/mountain/profile", s.ClaimProfile)

			r.Post("/steps", s.AddStep)
			r.Patch("/steps/{id}", s.EditStep)
			r.Put("/steps/{id}/status", s.UpdateStepStatus)
			r.Delete("/steps/{id}", s.DeleteStep)
			r.Put("/steps/{id}/note", s.SaveNote)
			r.Post("/steps/{id}/lessons", s.AddLesson)
			r.Delete("/steps/{id}/notes/{noteID}", s.DeleteNote)

			r.Get("/milestones", s.ListMilestones)
			r.Post("/milestones", s.AddMilestone)
			r.Delete("/milestones/{id}", s.DeleteMilestone)

			r.Get("/images", s.ListImages)
			r.Post("/images", s.UploadImage)
			r.Delete("/images/{id}", s.DeleteImage)

			r.Post("/banners/preview", s.PreviewBanner)
			r.Get("/banners/preview", s.LatestPreview)
			r.Post("/banners/export", s.ExportBanner)

			r.Route("/admin", func(r chi.Router) {
				r.Use(s.AdminMiddleware)
				r.Get("/waitlist", s.ListWaitlist)
				r.Put("/users/{id}/plan", s.SetPlan)
			})
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}
