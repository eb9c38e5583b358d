package mail_fx

import (
	"go.uber.org/fx"
	"tripwise/internal/config"
	"tripwise/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) (services.IMailService, error) {
	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.SMTPFrom,
		FromName:   cfg.SMTPFromName,
		UseSSL:     cfg.SMTPUseSSL,
		RequireTLS: cfg.SMTPRequireTLS,

		AppName:    cfg.SMTPFromName,
		AppBaseURL: cfg.AppBaseURL,
	})
}
