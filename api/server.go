package api

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cardiometrix/cardiometrix-api/external/cadence"
	"github.com/cardiometrix/cardiometrix-api/logmodule"
	"github.com/cardiometrix/cardiometrix-api/pipeline"
	"github.com/cardiometrix/cardiometrix-api/store"
	"github.com/cardiometrix/cardiometrix-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.CardioCore
	mongoStore store.MongoStore

	// Derivation pipeline
	pipeline *pipeline.Pipeline

	// background workflow client
	cadenceClient *cadence.CadenceClient
}

// NewServer new instance of server
func NewServer(cardio store.CardioCore, mongo store.MongoStore, p *pipeline.Pipeline, cadenceClient *cadence.CadenceClient) *Server {
	return &Server{
		store:         cardio,
		mongoStore:    mongo,
		pipeline:      p,
		cadenceClient: cadenceClient,
	}
}

// triggerRiskUpdate kicks the background workflow that recomputes the
// requester's daily risk after a new log arrives. No-op when the worker
// cluster is not wired.
func (s *Server) triggerRiskUpdate(accountNumber string) {
	if s.cadenceClient == nil {
		return
	}

	go func() {
		if err := utils.TriggerAccountRiskUpdate(*s.cadenceClient, context.Background(), []string{accountNumber}); err != nil {
			sentry.CaptureException(err)
		}
	}()
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Requester"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.requesterMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateMetadata)
		accountRoute.PATCH("/me/profile", s.accountUpdateProfile)
		accountRoute.DELETE("/me", s.accountDelete)
	}

	logRoute := apiRoute.Group("/logs")
	logRoute.Use(s.recognizeAccountMiddleware())
	{
		logRoute.POST("/measurements", s.createMeasurement)
		logRoute.GET("/measurements", s.listMeasurements)
		logRoute.POST("/symptoms", s.createSymptomCheckin)
		logRoute.POST("/adherence", s.upsertAdherence)
	}

	riskRoute := apiRoute.Group("/risk")
	riskRoute.Use(s.recognizeAccountMiddleware())
	{
		riskRoute.GET("/today", s.riskToday)
		riskRoute.POST("/compute", s.riskCompute)
		riskRoute.GET("/forecast", s.riskForecast)
		riskRoute.GET("/anomalies", s.riskAnomalies)
		riskRoute.GET("/weekly-summary", s.weeklySummary)
		riskRoute.GET("/care-plan", s.carePlan)
		riskRoute.GET("/data-quality", s.dataQuality)
		riskRoute.GET("/cohort", s.cohortComparison)
	}

	nudgeRoute := apiRoute.Group("/nudges")
	nudgeRoute.Use(s.recognizeAccountMiddleware())
	{
		nudgeRoute.GET("/today", s.nudgeToday)
		nudgeRoute.PATCH("/today", s.nudgeSetStatus)
		nudgeRoute.POST("/compute", s.nudgeCompute)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/run-daily", s.adminRunDaily)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Cardiometrix 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
