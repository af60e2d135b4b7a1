package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"planner/cmd/fx/activity_fx"
	"planner/cmd/fx/controllers_fx"
	"planner/cmd/fx/db_fx"
	"planner/cmd/fx/mail_fx"
	"planner/cmd/fx/participant_fx"
	"planner/cmd/fx/trip_fx"
	"planner/internal/api/controllers"
	"planner/internal/infra"
	"planner/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		trip_fx.Module,
		participant_fx.Module,
		activity_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "3333"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	participantController *controllers.ParticipantController,
	activityController *controllers.ActivityController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, participantController, activityController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	participantController *controllers.ParticipantController,
	activityController *controllers.ActivityController) {

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("/:tripId", tripController.GetTripDetails)
	tripsGroup.GET("/:tripId/confirm", tripController.ConfirmTrip)
	tripsGroup.POST("/:tripId/invites", participantController.InviteParticipant)
	tripsGroup.GET("/:tripId/participants", participantController.ListTripParticipants)
	tripsGroup.GET("/:tripId/activities", activityController.ListTripActivities)
	tripsGroup.POST("/:tripId/activities", activityController.CreateActivity)

	participantsGroup := r.Group("/participants")
	participantsGroup.GET("/:participantId/confirm", participantController.ConfirmParticipant)
}
