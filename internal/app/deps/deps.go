package deps

import (
	"context"
	"digitalmenu/internal/config"
	dl "digitalmenu/internal/core/domain/logging"
	drl "digitalmenu/internal/core/domain/rate_limiter"
	"digitalmenu/internal/core/domain/restaurant"
	duow "digitalmenu/internal/core/domain/unit_of_work"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/db"
	dbrestaurant "digitalmenu/internal/db/restaurant"
	uow "digitalmenu/internal/db/unit_of_work"
	dbuser "digitalmenu/internal/db/user"
	"digitalmenu/internal/implementations/email"
	"digitalmenu/internal/implementations/logging"
	publicid "digitalmenu/internal/implementations/public_id"
	randomstringgenerator "digitalmenu/internal/implementations/random_string_generator"
	ratelimiter "digitalmenu/internal/implementations/rate_limiter"
	"digitalmenu/internal/implementations/sanitizer"
	"digitalmenu/internal/implementations/session"
	"digitalmenu/internal/implementations/slug"
	tokenhasher "digitalmenu/internal/implementations/token_hasher"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB      *pgxpool.Pool
	Redis   *redis.Client
	Metrics *prometheus.Registry

	Now func() time.Time

	UnitOfWork                 duow.UnitOfWork
	UserRepository             user.UserRepository
	SessionRepository          user.SessionRepository
	VerificationCodeRepository user.VerificationCodeRepository
	RestaurantRepository       restaurant.Repository

	RateLimiter drl.RateLimiter

	LoginCodeGenerator    user.LoginCodeGenerator
	LoginCodeSender       user.LoginCodeSender
	SessionTokenGenerator user.SessionTokenGenerator
	TokenHasher           user.TokenHasher
	TextSanitizer         user.TextSanitizer

	SlugGenerator     restaurant.SlugGenerator
	PublicIDGenerator restaurant.PublicIDGenerator
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	deps.initMetrics()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.VerificationCodeRepository = dbuser.NewPgxVerificationCodeRepository(deps.DB)
	deps.RestaurantRepository = dbrestaurant.NewPgxRepository(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.initRateLimiter()

	randomGenerator := randomstringgenerator.NewGenerator()
	deps.LoginCodeGenerator = randomGenerator
	deps.SessionTokenGenerator = session.NewTokenGenerator()
	deps.initTokenHasher()
	deps.TextSanitizer = sanitizer.NewStrict()
	deps.SlugGenerator = slug.NewGenerator(randomGenerator)
	deps.PublicIDGenerator = publicid.NewUUID()
	deps.initLoginCodeSender()

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	pool, err := db.Connect(context.Background(), deps.Config.PostgresqlURL, deps.Config.DBConnectTimeout)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = pool
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		pool.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	if deps.Config.RateLimiter != config.RATE_LIMITER_REDIS {
		return func() {}
	}
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initMetrics() {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = registry
}

func (deps *Deps) initRateLimiter() {
	if deps.Redis != nil {
		deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger)
		deps.Logger.Info(context.Background(), "Using Redis rate limiter.")
		return
	}
	deps.RateLimiter = ratelimiter.NewMemory(deps.Now)
	deps.Logger.Info(context.Background(), "Using in-memory rate limiter.")
}

func (deps *Deps) initTokenHasher() {
	hasher, err := tokenhasher.NewHMAC(deps.Config.Secret)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not init token hasher.", dl.Entry("err", err))
		panic(err)
	}
	deps.TokenHasher = hasher
}

func (deps *Deps) initLoginCodeSender() {
	var primary user.LoginCodeSender
	if deps.Config.IsEmailEnabled() {
		primary = email.NewSESSender(
			deps.AwsConfig,
			deps.Config.AwsEmailSender,
			deps.Config.AwsEmailLoginCodeTemplate,
			int(deps.Config.LoginCodeTTL.Minutes()),
		)
	} else {
		deps.Logger.Warning(context.Background(), "Email delivery is disabled, login codes are logged.")
	}
	deps.LoginCodeSender = email.NewFallbackSender(
		deps.Logger,
		primary,
		email.NewConsoleSender(deps.Logger),
		email.NewDeliveryCounter(deps.Metrics),
	)
}
