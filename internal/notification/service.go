package notification

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
)

// Service is a composite notification service that can send notifications
// through multiple channels
type Service struct {
	discord *DiscordService
}

// NewService creates a new notification service
func NewService(log zerolog.Logger, webhookURL string) domain.NotificationService {
	var discord *DiscordService
	if webhookURL != "" {
		discord = NewDiscordService(log, webhookURL)
	}

	return &Service{
		discord: discord,
	}
}

// SendImportSummary sends batch summaries through all configured channels
func (s *Service) SendImportSummary(ctx context.Context, summary domain.ImportSummary) error {
	if s.discord != nil {
		if err := s.discord.SendImportSummary(ctx, summary); err != nil {
			return err
		}
	}
	return nil
}

// SendError sends error notifications through all configured channels
func (s *Service) SendError(ctx context.Context, err error) error {
	if s.discord != nil {
		if err := s.discord.SendError(ctx, err); err != nil {
			return err
		}
	}
	return nil
}
