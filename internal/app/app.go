package app

import (
	"digitalmenu/internal/app/deps"
	"digitalmenu/internal/app/services"
	"digitalmenu/internal/http/handlers/auth"
	logout "digitalmenu/internal/http/handlers/auth/log_out"
	"digitalmenu/internal/http/handlers/auth/me"
	requestlogincode "digitalmenu/internal/http/handlers/auth/request_login_code"
	updateprofile "digitalmenu/internal/http/handlers/auth/update_profile"
	verifylogincode "digitalmenu/internal/http/handlers/auth/verify_login_code"
	getmenu "digitalmenu/internal/http/handlers/menu/get_menu"
	"digitalmenu/internal/http/handlers/response"
	listrestaurants "digitalmenu/internal/http/handlers/restaurants/list_restaurants"
	listuserrestaurants "digitalmenu/internal/http/handlers/restaurants/list_user_restaurants"
	"digitalmenu/internal/http/middleware"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode
	cookie := auth.NewSessionCookie(
		!isTestMode,
		time.Duration(deps.Config.SessionMaxAgeDays)*24*time.Hour,
	)

	authRouter := chi.NewRouter()
	authRouter.Use(auth.SetAuthTokenToContext)
	authRouter.With(
		middleware.LimitByClientIP(deps.Logger, deps.RateLimiter, "request-code", services.RequestLoginCodePerIP),
	).Method(http.MethodPost, "/request-code", requestlogincode.New(s.RequestLoginCode, isTestMode))
	authRouter.With(
		middleware.LimitByClientIP(deps.Logger, deps.RateLimiter, "verify-code", services.VerifyLoginCodePerIP),
	).Method(http.MethodPost, "/verify-code", verifylogincode.New(s.VerifyLoginCode, cookie))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut, cookie))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	authRouter.Method(http.MethodPatch, "/me", updateprofile.New(s.UpdateProfile))

	restaurantsRouter := chi.NewRouter()
	restaurantsRouter.Use(auth.SetAuthTokenToContext)
	restaurantsRouter.Method(http.MethodGet, "/", listrestaurants.New(s.ListRestaurants))
	restaurantsRouter.Method(http.MethodGet, "/mine", listuserrestaurants.New(s.ListUserRestaurants))

	menuHandler := getmenu.New(s.GetMenu)
	menuRouter := chi.NewRouter()
	menuRouter.Method(http.MethodGet, "/p/{"+getmenu.PUBLIC_ID_PARAM+"}", menuHandler)
	menuRouter.Method(http.MethodGet, "/{"+getmenu.SLUG_PARAM+"}", menuHandler)

	metrics := middleware.NewMetrics(deps.Metrics)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Retry-After", requestlogincode.TEST_LOGIN_CODE_HEADER},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(metrics.Middleware)
	router.Get("/health", func(rw http.ResponseWriter, r *http.Request) {
		response.Render(rw, struct{}{}, http.StatusOK)
	})
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{}))
	router.Mount("/auth", authRouter)
	router.Mount("/restaurants", restaurantsRouter)
	router.Mount("/menu", menuRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           router,
		Addr:              address,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
