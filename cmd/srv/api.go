package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/trailpoint/backend/internal/middleware"
	"github.com/trailpoint/backend/pkg/router"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	if err := s.loadConfig(cctx); err != nil {
		return err
	}
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins:   s.configs.ApiServer.AllowCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: c.Handler(s.router.Handler()),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	log.Printf("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Public API.
	router.GET(s.router, "/getAttraction", s.attractionDomain.Get)
	router.GET(s.router, "/getListAttraction", s.attractionDomain.GetList)
	router.GET(s.router, "/getTask", s.taskDomain.Get)
	router.GET(s.router, "/getQuiz", s.taskDomain.GetQuiz)
	router.GET(s.router, "/getLeaderboard", s.statisticDomain.GetLeaderboard)

	// These following APIs need authentication with Access Token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier()
	authRouter.Before(authVerifier.Middleware())
	{
		// Submission API
		router.POST(authRouter, "/submitTask", s.submissionDomain.SubmitTask)
		router.GET(authRouter, "/getMySubmissions", s.submissionDomain.GetMySubmissions)

		// Progress API
		router.GET(authRouter, "/getProgress", s.progressDomain.Get)

		// Point API
		router.GET(authRouter, "/getPointBalance", s.pointDomain.GetBalance)
		router.GET(authRouter, "/getPointHistory", s.pointDomain.GetHistory)

		// Reward API
		router.GET(authRouter, "/getMyRewards", s.rewardDomain.GetMyRewards)
	}
}
