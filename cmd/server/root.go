package main

import (
	"fmt"
	"os"

	"github.com/dom/timesheet/internal/config"
	"github.com/dom/timesheet/internal/lock"
	"github.com/dom/timesheet/internal/logger"
	"github.com/dom/timesheet/internal/repository"
	"github.com/dom/timesheet/internal/repository/memory"
	"github.com/dom/timesheet/internal/repository/postgres"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Clock-in/clock-out tracking with monthly attendance reports",
	Long: `timesheet records up to four time entries per employee per business day,
enforces the lunch break and builds monthly reports of worked, overtime and
owed hours.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file (environment variables override it)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(reportCmd)
}

// app holds what every command needs once config is loaded.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	repos   *repository.Repositories
	locker  lock.Locker
	closers []func() error
}

func newApp(migrate bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}

	if cfg.DatabaseURL == config.MemoryDatabaseURL {
		log.Warn("using in-memory store, records are lost on exit")
		a.repos = memory.NewRepositories()
	} else {
		level := gormLogger.Warn
		if cfg.LogLevel == "debug" {
			level = gormLogger.Info
		}
		db, err := postgres.NewConnection(cfg.DatabaseURL, level)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		if migrate {
			if err := postgres.Migrate(db); err != nil {
				a.close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		a.repos = postgres.NewRepositories(db)
	}

	switch cfg.LockBackend {
	case config.LockBackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		a.closers = append(a.closers, rdb.Close)
		a.locker = lock.NewRedisLocker(rdb, cfg.LockTTL, log)
	default:
		a.locker = lock.NewLocalLocker()
	}

	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("failed to close resource", zap.Error(err))
		}
	}
	a.log.Sync()
}
