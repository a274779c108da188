package main

import (
	"github.com/akinwale/sms-blast/controller"
	"github.com/akinwale/sms-blast/dao"
	_ "github.com/akinwale/sms-blast/docs"
	"github.com/akinwale/sms-blast/gateway"
	"github.com/akinwale/sms-blast/log"
	"github.com/akinwale/sms-blast/service"
	"github.com/akinwale/sms-blast/util"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Sms blast HTTP API
// @description Multi-tenant bulk sms dashboard backend

// @contact.name Akin Wale

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Error.Println(err)
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	//create db client
	dbClient, err := dao.GetClient(util.GetEnv("DB_PATH", "smsblast.db"))
	if err != nil {
		log.Fatal(err)
	}

	//create gateway client, missing credentials are fatal
	gatewayClient, err := gateway.NewClient(gateway.Config{
		ProjectId:  util.GetEnv("TELERIVET_PROJECT_ID", ""),
		ApiKey:     util.GetEnv("TELERIVET_API_KEY", ""),
		RouteId:    util.GetEnv("TELERIVET_ROUTE_ID", ""),
		FromNumber: util.GetEnv("SMS_FROM", ""),
	})
	if err != nil {
		log.Fatal(err)
	}

	smsService := service.NewService(
		gatewayClient,
		gateway.NewLimiter(util.GetEnvAsInt("SMS_PER_SEC", 1)),
		dao.NewContactDao(dbClient),
		dao.NewTemplateDao(dbClient),
		dao.NewUserDao(dbClient),
		dao.NewSessionDao(dbClient),
		util.GetEnvAsInt("SESSION_TTL_HOURS", 24),
	)

	//attach http handlers
	e := echo.New()
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.HideBanner = true
	e.Use(middleware.BodyLimit("1M"))

	bindRoutes(e, smsService)

	//start http server
	log.Fatal(e.Start(":" + util.GetEnv("HTTP_PORT", "8080")))
}

func bindRoutes(e *echo.Echo, srv service.Service) {
	e.POST("/auth/signup", controller.GetSignUpFunc(srv))
	e.POST("/auth/signin", controller.GetSignInFunc(srv))

	auth := controller.GetAuthMiddleware(srv)

	e.POST("/auth/signout", controller.GetSignOutFunc(srv), auth)
	e.POST("/contacts", controller.GetUploadContactsFunc(srv), auth)
	e.GET("/contacts/pending", controller.GetPendingContactsFunc(srv), auth)
	e.POST("/templates", controller.GetSaveTemplateFunc(srv), auth)
	e.GET("/templates", controller.GetTemplatesFunc(srv), auth)
	e.POST("/broadcasts", controller.GetBroadcastFunc(srv), auth)
	e.GET("/broadcasts/progress", controller.GetProgressFunc(srv), auth)
	e.POST("/sms", controller.GetSendSmsFunc(srv), auth)
}
