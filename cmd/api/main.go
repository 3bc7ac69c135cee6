package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "loans-service/internal/adapter/http"
	"loans-service/internal/adapter/middleware"
	"loans-service/internal/adapter/repository/mysql"
	"loans-service/internal/config"
	"loans-service/internal/domain/loan"
	"loans-service/internal/infrastructure/cache"
	"loans-service/internal/infrastructure/db"
	"loans-service/internal/infrastructure/logging"
	ucloan "loans-service/internal/usecase/loan"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.ServiceName)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	gdb, err := openDB(cfg)
	if err != nil {
		logger.Fatal("open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	contact, err := config.LoadContactInfo(cfg.ContactInfoFile)
	if err != nil {
		logger.Fatal("load contact info", zap.Error(err))
	}

	var writeMW []echo.MiddlewareFunc
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.Fatal("connect redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		ttl := time.Duration(cfg.IdempTTLSecs) * time.Second
		writeMW = append(writeMW, middleware.IdempotencyMiddleware(rdb, ttl))
		logger.Info("idempotent replay enabled", zap.Duration("ttl", ttl))
	}

	repo := mysql.NewLoanRepository(gdb)
	usecase := ucloan.NewUsecase(repo, mysql.NewGormUoW(gdb), cfg.Auditor)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpadp.HTTPErrorHandler
	e.Server.ReadHeaderTimeout = 10 * time.Second
	e.Use(echomw.Recover(), middleware.CorrelationID(), middleware.RequestLogger())

	httpadp.Register(e, httpadp.NewHandler(contact), httpadp.NewLoanHandler(usecase), writeMW...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		logger.Info("listening", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// openDB connects to the configured store. sqlite is a local convenience and
// creates its table on start; mysql expects db/schema.sql to be applied.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	lvl := db.ParseLogLevel(cfg.DBLogLevel)
	if cfg.DBDriver == config.DriverSQLite {
		gdb, err := db.OpenSQLite(cfg.SQLitePath, lvl)
		if err != nil {
			return nil, err
		}
		if err := gdb.AutoMigrate(&loan.Loan{}); err != nil {
			return nil, err
		}
		return gdb, nil
	}
	return db.OpenGorm(cfg.MySQLDSN(), lvl)
}
