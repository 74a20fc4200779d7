package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hcorbage/corb3d/internal/config"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

// brasilAPIAddress is the body of GET /api/cep/v1/{cep}.
type brasilAPIAddress struct {
	CEP          string `json:"cep"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
}

// viaCEPAddress is the body of GET /ws/{cep}/json/. Unknown codes come back as
// 200 with "erro" set, either as a boolean or as the string "true".
type viaCEPAddress struct {
	CEP        string     `json:"cep"`
	Logradouro string     `json:"logradouro"`
	Bairro     string     `json:"bairro"`
	Localidade string     `json:"localidade"`
	UF         string     `json:"uf"`
	Erro       viaCEPFlag `json:"erro"`
}

type viaCEPFlag bool

func (f *viaCEPFlag) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	*f = viaCEPFlag(strings.EqualFold(s, "true"))
	return nil
}

type brasilAPIProvider struct {
	client *utils.HTTPClient
}

// NewBrasilAPIProvider returns the BrasilAPI implementation of
// [PostalCodeProvider] rooted at baseURL (e.g. https://brasilapi.com.br/api/cep/v1).
func NewBrasilAPIProvider(cfg config.PostalCode) PostalCodeProvider {
	return &brasilAPIProvider{client: utils.NewHTTPClient(strings.TrimRight(cfg.PrimaryURL, "/"), cfg.Timeout)}
}

// Lookup implements [PostalCodeProvider]. BrasilAPI field names are mapped to
// the ViaCEP shape served to the browser.
func (b *brasilAPIProvider) Lookup(ctx context.Context, cep string) (models.PostalAddress, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		Get("/" + cep)
	if err != nil {
		return models.PostalAddress{}, fmt.Errorf("brasilapi request: %w", err)
	}
	if err = providerError(resp); err != nil {
		return models.PostalAddress{}, fmt.Errorf("brasilapi: %w", err)
	}

	var found brasilAPIAddress
	if err = json.Unmarshal(resp.Body(), &found); err != nil {
		return models.PostalAddress{}, fmt.Errorf("decode brasilapi response: %w", err)
	}
	if found.CEP == "" && found.City == "" {
		return models.PostalAddress{}, fmt.Errorf("brasilapi: %w", ErrEmptyAddress)
	}

	return models.PostalAddress{
		Logradouro: found.Street,
		Bairro:     found.Neighborhood,
		Localidade: found.City,
		UF:         found.State,
		CEP:        orDefault(found.CEP, cep),
	}, nil
}

type viaCEPProvider struct {
	client *utils.HTTPClient
}

// NewViaCEPProvider returns the ViaCEP implementation of [PostalCodeProvider]
// rooted at baseURL (e.g. https://viacep.com.br/ws).
func NewViaCEPProvider(cfg config.PostalCode) PostalCodeProvider {
	return &viaCEPProvider{client: utils.NewHTTPClient(strings.TrimRight(cfg.FallbackURL, "/"), cfg.Timeout)}
}

// Lookup implements [PostalCodeProvider].
func (v *viaCEPProvider) Lookup(ctx context.Context, cep string) (models.PostalAddress, error) {
	resp, err := v.client.R().
		SetContext(ctx).
		Get("/" + cep + "/json/")
	if err != nil {
		return models.PostalAddress{}, fmt.Errorf("viacep request: %w", err)
	}
	if err = providerError(resp); err != nil {
		return models.PostalAddress{}, fmt.Errorf("viacep: %w", err)
	}

	var found viaCEPAddress
	if err = json.Unmarshal(resp.Body(), &found); err != nil {
		return models.PostalAddress{}, fmt.Errorf("decode viacep response: %w", err)
	}
	if found.Erro {
		return models.PostalAddress{}, fmt.Errorf("viacep: %w", ErrCEPNotFound)
	}

	return models.PostalAddress{
		Logradouro: found.Logradouro,
		Bairro:     found.Bairro,
		Localidade: found.Localidade,
		UF:         found.UF,
		CEP:        orDefault(found.CEP, cep),
	}, nil
}

type namedProvider struct {
	name     string
	provider PostalCodeProvider
}

// fallbackProvider asks each provider in order and returns the first success.
type fallbackProvider struct {
	providers []namedProvider
	logger    *logger.Logger
}

// NewPostalCodeProvider builds the production chain: BrasilAPI first, ViaCEP
// when BrasilAPI fails for any reason.
func NewPostalCodeProvider(cfg config.PostalCode, logger *logger.Logger) PostalCodeProvider {
	return newFallbackProvider(logger,
		namedProvider{name: "brasilapi", provider: NewBrasilAPIProvider(cfg)},
		namedProvider{name: "viacep", provider: NewViaCEPProvider(cfg)},
	)
}

func newFallbackProvider(logger *logger.Logger, providers ...namedProvider) *fallbackProvider {
	logger.Debug().Int("providers", len(providers)).Msg("creating postal code provider chain")
	return &fallbackProvider{providers: providers, logger: logger}
}

// Lookup implements [PostalCodeProvider].
func (f *fallbackProvider) Lookup(ctx context.Context, cep string) (models.PostalAddress, error) {
	log := logger.FromContext(ctx)

	var errs []error
	for _, p := range f.providers {
		address, err := p.provider.Lookup(ctx, cep)
		if err == nil {
			return address, nil
		}

		log.Warn().Err(err).Str("func", "*fallbackProvider.Lookup").
			Str("provider", p.name).
			Str("cep", cep).
			Msg("postal code provider failed")
		errs = append(errs, err)

		if ctx.Err() != nil {
			break
		}
	}

	return models.PostalAddress{}, fmt.Errorf("%w: %w", ErrPostalCodeUnavailable, errors.Join(errs...))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
