package bootstrap

import (
	"ticketera/internal/pkg/config"
	"ticketera/internal/pkg/credential"
	"ticketera/internal/pkg/identity"

	"go.uber.org/fx"
)

// IdentityModule wires the two token concerns: validating inbound bearer
// tokens and signing outbound ticket credentials. Separate secrets so a
// ticket QR can never be replayed as a session token.
var IdentityModule = fx.Module("identity",
	fx.Provide(
		NewTokenValidator,
		NewCredentialSigner,
	),
)

func NewTokenValidator(cfg config.Config) *identity.Validator {
	return identity.NewValidator(cfg.Auth.Secret)
}

func NewCredentialSigner(cfg config.Config) credential.Signer {
	return credential.NewSigner(cfg.Tickets.SigningSecret)
}
