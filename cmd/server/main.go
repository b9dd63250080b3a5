package main

import (
	"log"

	"github.com/Vareni4/daggybot/internal/config"
	"github.com/Vareni4/daggybot/internal/database"
	"github.com/Vareni4/daggybot/internal/handlers"
	"github.com/Vareni4/daggybot/internal/middleware"
	"github.com/Vareni4/daggybot/internal/services"
	"github.com/Vareni4/daggybot/internal/ws"

	_ "github.com/Vareni4/daggybot/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Daggybot API
// @version         1.0
// @description     Backend for the daggybot sports-betting Telegram mini app
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Println("warning: bot token is empty, initData verification will reject everything")
	}

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	policy := services.NewAccessPolicy(cfg.AuthorizedUsers, cfg.AdminUsers)
	authService := services.NewAuthService(cfg.BotToken, cfg.JWTSecret, cfg.JWTExpiration, policy)
	userService := services.NewUserService(db)
	tournamentService := services.NewTournamentService(db)
	matchService := services.NewMatchService(db)
	participationService := services.NewParticipationService(db)
	betService := services.NewBetService(db, policy)

	authHandler := handlers.NewAuthHandler(authService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService, userService)
	teamHandler := handlers.NewTeamHandler(tournamentService)
	matchHandler := handlers.NewMatchHandler(matchService, userService, hub)
	participationHandler := handlers.NewParticipationHandler(participationService, userService, hub)
	betHandler := handlers.NewBetHandler(betService, userService, hub)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/matches", wsHandler.MatchFeed)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/init", authHandler.Init)

		api.GET("/tournaments", tournamentHandler.ListTournaments)
		api.GET("/teams", teamHandler.ListTeams)
		api.GET("/matches", matchHandler.ListMatches)

		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(authService))
		{
			authorized.GET("/tournaments/available", tournamentHandler.AvailableTournaments)
			authorized.GET("/matches/mine", matchHandler.MyMatches)
			authorized.POST("/participations", participationHandler.Participate)
			authorized.POST("/bets", betHandler.PlaceBet)
		}

		admin := api.Group("")
		admin.Use(middleware.JWTAuth(authService), middleware.AdminOnly(policy))
		{
			admin.POST("/tournaments", tournamentHandler.CreateTournament)
			admin.POST("/teams", teamHandler.CreateTeam)
			admin.POST("/matches", matchHandler.CreateMatch)
			admin.GET("/participations/pending", participationHandler.Pending)
			admin.POST("/participations/:id/approve", participationHandler.Approve)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
