// Package routing wires the gin engines of the gateway and the backend services.
package routing

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"calendar-server/internal/config"
	"calendar-server/internal/gateway"
	"calendar-server/internal/handlers"
	"calendar-server/internal/managers"
	"calendar-server/internal/middleware"
	"calendar-server/internal/repositories"
	"calendar-server/internal/schemas"
	"calendar-server/internal/services"
	"calendar-server/internal/utils"
)

// InitAuthRouter builds the engine of the auth service.
func InitAuthRouter(databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr, passwordMgr managers.PasswordMgr) *gin.Engine {
	router := newEngine()
	setupHealthRoute(router, "Auth Service is running", databaseMgr)

	authService := services.NewAuthService(repositories.NewUserRepository(databaseMgr), passwordMgr, jwtMgr)
	authHandler := handlers.NewAuthHandler(authService)

	router.POST("/register", middleware.ValidateStruct[schemas.RegistrationRequest](), authHandler.RegisterUser)
	router.POST("/login", middleware.ValidateStruct[schemas.LoginRequest](), authHandler.LoginUser)
	router.POST("/refresh", authHandler.RefreshToken)
	router.GET("/me", authHandler.GetCurrentUser)
	router.POST("/logout", authHandler.LogoutUser)

	return router
}

// InitEventsRouter builds the engine of the events service. Every /events route requires a bearer token.
func InitEventsRouter(databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr) *gin.Engine {
	router := newEngine()
	setupHealthRoute(router, "Events Service is running", databaseMgr)

	eventHandler := handlers.NewEventHandler(services.NewEventService(repositories.NewEventRepository(databaseMgr)))

	events := router.Group("/events")
	events.Use(middleware.RequireAuth(newResolver(databaseMgr, jwtMgr)))
	{
		events.GET("", eventHandler.ListEvents)
		events.POST("", middleware.ValidateStruct[schemas.EventCreateRequest](), eventHandler.CreateEvent)
		events.GET("/:"+utils.IdParamKey, eventHandler.GetEvent)
		events.PUT("/:"+utils.IdParamKey, middleware.ValidateStruct[schemas.EventUpdateRequest](), eventHandler.UpdateEvent)
		events.DELETE("/:"+utils.IdParamKey, eventHandler.DeleteEvent)
	}

	return router
}

// InitTodosRouter builds the engine of the todos service. Every /todos route requires a bearer token.
func InitTodosRouter(databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr) *gin.Engine {
	router := newEngine()
	setupHealthRoute(router, "Todos Service is running", databaseMgr)

	todoHandler := handlers.NewTodoHandler(services.NewTodoService(repositories.NewTodoRepository(databaseMgr)))

	todos := router.Group("/todos")
	todos.Use(middleware.RequireAuth(newResolver(databaseMgr, jwtMgr)))
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", middleware.ValidateStruct[schemas.TodoCreateRequest](), todoHandler.CreateTodo)
		todos.GET("/:"+utils.IdParamKey, todoHandler.GetTodo)
		todos.PUT("/:"+utils.IdParamKey, middleware.ValidateStruct[schemas.TodoUpdateRequest](), todoHandler.UpdateTodo)
		todos.DELETE("/:"+utils.IdParamKey, todoHandler.DeleteTodo)
	}

	return router
}

// InitGatewayRouter builds the edge engine proxying /api/auth, /api/events and /api/todos to the backends.
func InitGatewayRouter(cfg *config.Config) (*gin.Engine, error) {
	transport := gateway.NewTransport(cfg)
	authProxy, err := gateway.NewProxy("auth", cfg.AuthServiceURL, "/api/auth", transport)
	if err != nil {
		return nil, err
	}
	eventsProxy, err := gateway.NewProxy("events", cfg.EventsServiceURL, "/api", transport)
	if err != nil {
		return nil, err
	}
	todosProxy, err := gateway.NewProxy("todos", cfg.TodosServiceURL, "/api", transport)
	if err != nil {
		return nil, err
	}

	router := newEngine()
	router.GET("/health", func(c *gin.Context) {
		utils.WriteAndLogResponse(c, &schemas.HealthDTO{
			Status: "API Gateway is running",
			Services: map[string]string{
				authProxy.Name:   authProxy.HealthURL(),
				eventsProxy.Name: eventsProxy.HealthURL(),
				todosProxy.Name:  todosProxy.HealthURL(),
			},
		}, http.StatusOK)
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", authProxy.Forward)
		auth.POST("/login", authProxy.Forward)
		auth.POST("/refresh", authProxy.Forward)
		auth.GET("/me", authProxy.Forward)
		auth.POST("/logout", authProxy.Forward)

		setupResourceProxy(api.Group("/events"), eventsProxy)
		setupResourceProxy(api.Group("/todos"), todosProxy)
	}

	return router, nil
}

func setupResourceProxy(group *gin.RouterGroup, proxy *gateway.Proxy) {
	group.GET("", proxy.Forward)
	group.POST("", proxy.Forward)
	group.GET("/:"+utils.IdParamKey, proxy.Forward)
	group.PUT("/:"+utils.IdParamKey, proxy.Forward)
	group.DELETE("/:"+utils.IdParamKey, proxy.Forward)
}

func newEngine() *gin.Engine {
	router := gin.New()
	// gin.Context falls back to the request context, so cancellation reaches the pgx queries
	router.ContextWithFallback = true
	setupCommonMiddleware(router)
	return router
}

func setupCommonMiddleware(router *gin.Engine) {
	router.Use(middleware.InjectTrace())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Accept", "Authorization", "Content-Type", "Origin"},
		ExposeHeaders:   []string{"Content-Length", "Content-Type", middleware.TraceHeader},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())
}

func setupHealthRoute(router *gin.Engine, status string, databaseMgr managers.DatabaseMgr) {
	router.GET("/health", func(c *gin.Context) {
		if err := databaseMgr.GetPool().Ping(c); err != nil {
			utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusServiceUnavailable, err)
			return
		}
		utils.WriteAndLogResponse(c, &schemas.HealthDTO{Status: status}, http.StatusOK)
	})
}

func newResolver(databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr) services.ContextResolver {
	return services.NewAuthResolver(repositories.NewUserRepository(databaseMgr), jwtMgr)
}
