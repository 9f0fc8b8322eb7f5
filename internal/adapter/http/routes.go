package http

import (
	"github.com/gin-gonic/gin"

	"tasklist/internal/adapter/http/handlers"
	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/adapter/http/validation"
)

func RegisterRoutes(
	r *gin.Engine,
	tokens middleware.TokenParser,
	healthHandler *handlers.HealthHandler,
	listHandler *handlers.ListHandler,
	taskHandler *handlers.TaskHandler,
) {
	validation.UseJSONFieldNames()

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	lists := api.Group("/lists")
	lists.Use(middleware.Authenticate(tokens), middleware.RequireAuth())
	{
		route(lists, "GET", "", listHandler.ListLists)
		route(lists, "POST", "", listHandler.CreateList)
		route(lists, "GET", "/:listID", listHandler.GetListDetails)
		route(lists, "PUT", "/:listID", listHandler.UpdateList)
		route(lists, "DELETE", "/:listID", listHandler.DeleteList)

		route(lists, "GET", "/:listID/tasks", taskHandler.ListTasks)
		route(lists, "POST", "/:listID/tasks", taskHandler.CreateTask)
		route(lists, "GET", "/:listID/tasks/:taskID", taskHandler.GetTaskDetails)
		route(lists, "PUT", "/:listID/tasks/:taskID", taskHandler.UpdateTask)
		route(lists, "DELETE", "/:listID/tasks/:taskID", taskHandler.DeleteTask)
	}
}

// route serves path with and without its trailing slash so clients never
// see a redirect that would drop the request body.
func route(g *gin.RouterGroup, method, path string, handler gin.HandlerFunc) {
	g.Handle(method, path, handler)
	g.Handle(method, path+"/", handler)
}
