package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"companykata/internal/commons"
	"companykata/internal/company"
	"companykata/internal/company/repository"
	"companykata/internal/company/usecase"
	"companykata/internal/config"
	"companykata/internal/fixture"
	"companykata/internal/infrastructure/logger"
	"companykata/internal/infrastructure/mysql"
	"companykata/internal/server"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file; environment variables are used when empty")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	repo, db, err := newCompanyRepository(context.Background(), cfg)
	if err != nil {
		zapLogger.Fatal("creating company repository", zap.String("source", cfg.Company.Source), zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}
	zapLogger.Info("company source ready", zap.String("source", cfg.Company.Source), zap.String("company", cfg.Company.Name))

	companyCtrl := company.NewModule(repo, zapLogger)

	router := server.NewRouter(companyCtrl, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return commons.LoadConfig(path)
}

// newCompanyRepository returns the open database too when the source is MySQL, so main can close it.
func newCompanyRepository(ctx context.Context, cfg *config.Config) (usecase.CompanyRepository, *sql.DB, error) {
	switch cfg.Company.Source {
	case config.CompanySourceFixture:
		return repository.NewMemoryCompanyRepository(fixture.NewCompany()), nil, nil
	case config.CompanySourceFile:
		c, err := fixture.LoadFile(cfg.Company.FixturePath)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMemoryCompanyRepository(c), nil, nil
	case config.CompanySourceMySQL:
		db, err := mysql.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMySQLCompanyRepository(db, cfg.Company.Name), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown company source %q", cfg.Company.Source)
	}
}
