package services

import (
	"digitalmenu/internal/app/deps"
	drl "digitalmenu/internal/core/domain/rate_limiter"
	"digitalmenu/internal/core/services"
	"digitalmenu/internal/core/services/auth"
	cleanupexpired "digitalmenu/internal/core/services/cleanup_expired"
	getmenu "digitalmenu/internal/core/services/get_menu"
	getuserbysessiontoken "digitalmenu/internal/core/services/get_user_by_session_token"
	importmenu "digitalmenu/internal/core/services/import_menu"
	listrestaurants "digitalmenu/internal/core/services/list_restaurants"
	listuserrestaurants "digitalmenu/internal/core/services/list_user_restaurants"
	logout "digitalmenu/internal/core/services/log_out"
	ratelimiting "digitalmenu/internal/core/services/rate_limiting"
	requestlogincode "digitalmenu/internal/core/services/request_login_code"
	updateprofile "digitalmenu/internal/core/services/update_profile"
	verifylogincode "digitalmenu/internal/core/services/verify_login_code"
	"time"
)

var (
	RequestLoginCodePerEmail = drl.Limit{Value: 5, Interval: drl.Every(15 * time.Minute)}
	RequestLoginCodePerIP    = drl.Limit{Value: 20, Interval: drl.Every(15 * time.Minute)}
	VerifyLoginCodePerEmail  = drl.Limit{Value: 10, Interval: drl.Every(15 * time.Minute)}
	VerifyLoginCodePerIP     = drl.Limit{Value: 30, Interval: drl.Every(15 * time.Minute)}
)

type Services struct {
	RequestLoginCode      services.Service[requestlogincode.Input, requestlogincode.Result]
	VerifyLoginCode       services.Service[verifylogincode.Input, verifylogincode.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	UpdateProfile         services.Service[updateprofile.Input, updateprofile.Result]

	ListRestaurants     services.Service[listrestaurants.Input, listrestaurants.Result]
	ListUserRestaurants services.Service[listuserrestaurants.Input, listuserrestaurants.Result]
	GetMenu             services.Service[getmenu.Input, getmenu.Result]
	ImportMenu          services.Service[importmenu.Input, importmenu.Result]

	CleanupExpired services.Service[cleanupexpired.Input, cleanupexpired.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.RequestLoginCode = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		RequestLoginCodePerEmail,
		requestlogincode.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.LoginCodeGenerator,
			deps.TokenHasher,
			deps.LoginCodeSender,
			deps.Config.LoginCodeTTL,
			deps.Now,
		),
	)
	s.VerifyLoginCode = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		VerifyLoginCodePerEmail,
		verifylogincode.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.TokenHasher,
			deps.SessionTokenGenerator,
			deps.TextSanitizer,
			deps.Config.SessionMaxAgeDays,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
		deps.TokenHasher,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
		deps.TokenHasher,
		deps.Now,
	)
	s.UpdateProfile = auth.WithAuthentication(
		deps.SessionRepository,
		deps.TokenHasher,
		deps.Now,
		updateprofile.New(
			deps.Logger,
			deps.UserRepository,
			deps.TextSanitizer,
			deps.Now,
		),
	)

	s.ListRestaurants = listrestaurants.New(deps.Logger, deps.RestaurantRepository)
	s.ListUserRestaurants = auth.WithAuthentication(
		deps.SessionRepository,
		deps.TokenHasher,
		deps.Now,
		listuserrestaurants.New(deps.Logger, deps.RestaurantRepository),
	)
	s.GetMenu = getmenu.New(deps.Logger, deps.RestaurantRepository)
	s.ImportMenu = importmenu.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.SlugGenerator,
		deps.PublicIDGenerator,
		deps.TextSanitizer,
		deps.Now,
	)

	s.CleanupExpired = cleanupexpired.New(
		deps.Logger,
		deps.SessionRepository,
		deps.VerificationCodeRepository,
		deps.Now,
	)

	return s
}
