package bootstrap

import (
	"pupperazi-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.JWTConfig { return cfg.JWT },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.SMSConfig { return cfg.SMS },
		func(cfg config.Config) config.EmailConfig { return cfg.Email },
	),
)
