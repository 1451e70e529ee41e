package service

import (
	"github.com/MKhiriev/codebook-vault/internal/crypto"
	"github.com/MKhiriev/codebook-vault/internal/logger"
	"github.com/MKhiriev/codebook-vault/internal/store"
	"github.com/MKhiriev/codebook-vault/internal/validators"
)

type Services struct {
	AuthService  AuthService
	VaultService VaultService
}

func NewServices(repos *store.Repositories, logger *logger.Logger) *Services {
	validator := validators.NewVaultValidator()
	envelope := crypto.NewEnvelopeService()
	hasher := crypto.NewPasswordHasher()
	generator := crypto.NewGenerator()

	return &Services{
		AuthService:  NewAuthService(repos.Users, repos.Codebooks, hasher, validator, logger),
		VaultService: NewVaultService(repos.Codebooks, repos.Entries, envelope, generator, validator, logger),
	}
}
