package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/liftlog/internal/db"
	"github.com/terraincognita07/liftlog/internal/services"
	"github.com/terraincognita07/liftlog/seed"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SeedResult struct {
	Exercises int
	Routines  int
}

// SeedDatabase loads the default exercise catalog into an empty database and,
// when routinesFile is set, upserts the predefined routines it describes.
func SeedDatabase(database *gorm.DB, routinesFile string, logger *zap.Logger) (SeedResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	repositories := db.NewRepositories(database)
	seeder := services.NewSeeder(repositories.Exercises, repositories.PredefinedRoutines)

	result := SeedResult{}
	written, err := seeder.SeedExercises(seed.DefaultExercises)
	if err != nil {
		return result, err
	}
	result.Exercises = written
	if written > 0 {
		logger.Info("seeded default exercises", zap.Int("count", written))
	}

	path := strings.TrimSpace(routinesFile)
	if path == "" {
		return result, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("read routines file: %w", err)
	}
	written, err = seeder.SeedRoutines(raw)
	if err != nil {
		return result, err
	}
	result.Routines = written
	logger.Info("seeded predefined routines", zap.Int("count", written), zap.String("file", path))
	return result, nil
}

func RunSeedCommand(dbPath string, routinesFile string, logger *zap.Logger, out io.Writer) error {
	database, err := db.OpenSQLite(dbPath, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		_ = db.Close(database)
	}()

	result, err := SeedDatabase(database, routinesFile, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Seeded %d exercises and %d predefined routines into %s\n", result.Exercises, result.Routines, dbPath)
	return nil
}
