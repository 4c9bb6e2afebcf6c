package api

import (
	ambassadorHandler "ambassador-server/internal/ambassador/handler"
	authHandler "ambassador-server/internal/auth/handler"
	dispatchHandler "ambassador-server/internal/dispatch/handler"
	ticketingHandler "ambassador-server/internal/ticketing/handler"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type API struct {
	router            *gin.RouterGroup
	authHandler       authHandler.Handler
	ticketingHandler  ticketingHandler.Handler
	ambassadorHandler ambassadorHandler.Handler
	dispatchHandler   dispatchHandler.Handler
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	ticketingHandler ticketingHandler.Handler,
	ambassadorHandler ambassadorHandler.Handler,
	dispatchHandler dispatchHandler.Handler,
) API {
	return API{
		router:            router,
		authHandler:       authHandler,
		ticketingHandler:  ticketingHandler,
		ambassadorHandler: ambassadorHandler,
		dispatchHandler:   dispatchHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	dispatchGroup := a.router.Group("/dispatch", a.dispatchHandler.RequireCronSecret())
	{
		dispatchGroup.GET("/due", a.dispatchHandler.HandleDispatchDue)
		dispatchGroup.POST("/due", a.dispatchHandler.HandleDispatchDue)
		dispatchGroup.POST("/trackers/sync", a.dispatchHandler.HandleSyncTrackers)
	}

	apiGroup := a.router.Group("/api")
	apiGroup.GET("/ticketing/callback", a.ticketingHandler.HandleCallback)

	orgGroup := apiGroup.Group("/organizations/:organization_id", a.authHandler.HandleJWTMiddleware)
	{
		orgGroup.PUT("/ticketing/credentials", a.ticketingHandler.HandleSaveClientCredentials)
		orgGroup.GET("/ticketing/authorize", a.ticketingHandler.HandleAuthorize)
		orgGroup.GET("/ticketing/status", a.ticketingHandler.HandleStatus)
		orgGroup.DELETE("/ticketing/connection", a.ticketingHandler.HandleDisconnect)
		orgGroup.POST("/ticketing/sync", a.ticketingHandler.HandleSyncStats)
		orgGroup.POST("/ambassadors/:ambassador_event_id/accept", a.ambassadorHandler.HandleAccept)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
