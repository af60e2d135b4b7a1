package participant_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"planner/internal/repositories"
	"planner/internal/services"
)

var Module = fx.Provide(provideParticipantRepo, provideParticipantService)

func provideParticipantRepo(db *gorm.DB) repositories.ParticipantRepository {
	return repositories.NewParticipantRepository(db)
}

func provideParticipantService(
	tripRepo repositories.TripRepository,
	participantRepo repositories.ParticipantRepository,
	mailService services.IMailService) services.ParticipantServiceInterface {

	return services.NewParticipantService(tripRepo, participantRepo, mailService)
}
