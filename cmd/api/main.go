package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/talentiq/talentiq-backend-go/internal/config"
	appHTTP "github.com/talentiq/talentiq-backend-go/internal/handler/http"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/database"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/oauth"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/token"
	"github.com/talentiq/talentiq-backend-go/internal/repository/postgresql"
	authService "github.com/talentiq/talentiq-backend-go/internal/service/auth"
	departmentService "github.com/talentiq/talentiq-backend-go/internal/service/department"
	employeeService "github.com/talentiq/talentiq-backend-go/internal/service/employee"
	mobilityService "github.com/talentiq/talentiq-backend-go/internal/service/mobility"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(context.Background(), dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	accountRepo := postgresql.NewAccountRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	tokenService := token.NewTokenService(
		cfg.Token.SigningSecret,
		cfg.Token.SessionSecret,
		cfg.Token.AccessExpiration,
		cfg.Token.RefreshExpiration,
	)

	providers := oauth.Registry{}
	if cfg.OAuth.GoogleClientID != "" {
		providers["google"] = oauth.NewGoogleProvider(
			cfg.OAuth.GoogleClientID,
			cfg.OAuth.GoogleClientSecret,
			cfg.OAuth.GoogleRedirectURL,
			cfg.OAuth.GoogleScopes,
		)
	}

	authSvc := authService.NewAuthService(db, userRepo, accountRepo, tokenService, providers)
	mobilitySvc := mobilityService.NewMobilityService(db, userRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	authHandler := appHTTP.NewAuthHandler(tokenService, authSvc)
	mobilityHandler := appHTTP.NewMobilityHandler(mobilitySvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	adminHandler := appHTTP.NewAdminHandler(authSvc)

	router := appHTTP.NewRouter(
		tokenService,
		authHandler,
		mobilityHandler,
		departmentHandler,
		employeeHandler,
		adminHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
