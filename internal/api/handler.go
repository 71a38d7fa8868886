package api

import (
	"errors"

	"github.com/terraincognita07/liftlog/internal/db"
	"github.com/terraincognita07/liftlog/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	exercises     *services.ExerciseService
	today         *services.TodayRoutineService
	history       *services.HistoryService
	routines      *services.PredefinedRoutineService
	access        *services.AccessService
	clock         services.Clock
	logger        *zap.Logger
	accessLimiter *attemptLimiter
}

type HandlerOptions struct {
	// AccessKeyHash is the bcrypt hash of the shared access key. Empty means
	// every key check answers access: false.
	AccessKeyHash []byte
	SecretKey     string
	Clock         services.Clock
	Logger        *zap.Logger
}

func NewHandler(database *gorm.DB, options HandlerOptions) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if options.Clock == nil {
		options.Clock = services.SystemClock{}
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		exercises:     services.NewExerciseService(repositories.Exercises),
		today:         services.NewTodayRoutineService(repositories.TodayRoutine, repositories.Exercises, repositories.History, options.Clock),
		history:       services.NewHistoryService(repositories.History),
		routines:      services.NewPredefinedRoutineService(repositories.PredefinedRoutines, repositories.Exercises, repositories.Completion, options.Clock),
		access:        services.NewAccessService(options.AccessKeyHash, []byte(options.SecretKey), options.Clock),
		clock:         options.Clock,
		logger:        options.Logger,
		accessLimiter: newAttemptLimiter(),
	}, nil
}
