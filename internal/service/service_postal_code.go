package service

import (
	"context"
	"fmt"

	"github.com/hcorbage/corb3d/internal/adapter"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

const postalCodeDigits = 8

type postalCodeService struct {
	provider adapter.PostalCodeProvider

	logger *logger.Logger
}

func NewPostalCodeService(provider adapter.PostalCodeProvider, logger *logger.Logger) PostalCodeService {
	return &postalCodeService{provider: provider, logger: logger}
}

// Lookup resolves a CEP. Non-digits are stripped before the length check.
func (s *postalCodeService) Lookup(ctx context.Context, cep string) (models.PostalAddress, error) {
	digits := utils.OnlyDigits(cep)
	if len(digits) != postalCodeDigits {
		return models.PostalAddress{}, fmt.Errorf("%w: %q", ErrInvalidPostalCode, cep)
	}

	address, err := s.provider.Lookup(ctx, digits)
	if err != nil {
		return models.PostalAddress{}, err
	}
	return address, nil
}
