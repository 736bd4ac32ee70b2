package routes

import (
	"net/http"
	"time"

	"github.com/dizzyfrogs/chunklog/config"
	"github.com/dizzyfrogs/chunklog/controllers"
	"github.com/dizzyfrogs/chunklog/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth       *controllers.AuthController
	Users      *controllers.UserController
	Foods      *controllers.FoodController
	FoodLogs   *controllers.FoodLogController
	WeightLogs *controllers.WeightLogController
	Goals      *controllers.GoalController
}

func SetupRouter(cfg *config.Config, ctl Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ChunkLog API running!"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", ctl.Auth.Login)
		auth.POST("/refresh", ctl.Auth.Refresh)
	}

	users := r.Group("/users")
	{
		users.POST("/", ctl.Users.Register)

		me := users.Group("", middlewares.AuthMiddleware(cfg))
		{
			me.GET("/me", ctl.Users.Me)
			me.PUT("/me", ctl.Users.UpdateMe)
			me.DELETE("/me", ctl.Users.DeleteMe)
		}
	}

	foods := r.Group("/foods", middlewares.AuthMiddleware(cfg))
	{
		foods.POST("/", ctl.Foods.Create)
		foods.GET("/", ctl.Foods.List)
		foods.GET("/search", ctl.Foods.Search)
		foods.GET("/:id", ctl.Foods.Get)
		foods.PUT("/:id", ctl.Foods.Update)
		foods.DELETE("/:id", ctl.Foods.Delete)
	}

	foodLogs := r.Group("/foodlogs", middlewares.AuthMiddleware(cfg))
	{
		foodLogs.POST("/", ctl.FoodLogs.Create)
		foodLogs.GET("/", ctl.FoodLogs.List)
		foodLogs.DELETE("/:id", ctl.FoodLogs.Delete)
	}

	weightLogs := r.Group("/weightlogs", middlewares.AuthMiddleware(cfg))
	{
		weightLogs.POST("/", ctl.WeightLogs.Create)
		weightLogs.GET("/", ctl.WeightLogs.List)
		weightLogs.DELETE("/:id", ctl.WeightLogs.Delete)
	}

	goals := r.Group("/goals", middlewares.AuthMiddleware(cfg))
	{
		goals.POST("/", ctl.Goals.Set)
		goals.GET("/", ctl.Goals.Get)
		goals.POST("/calculate", ctl.Goals.Calculate)
	}

	return r
}
