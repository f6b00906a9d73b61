package bootstrap

import (
	"pupperazi-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		jwt.NewService,
	),
)
