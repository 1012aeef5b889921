package usecase

import (
	"strings"
	"time"

	"github.com/koajpc/backoffice-api/internal/application/dto"
	"github.com/koajpc/backoffice-api/internal/domain"
	"github.com/koajpc/backoffice-api/internal/domain/entity"
	"github.com/koajpc/backoffice-api/internal/domain/repository"
)

// KoajCodeUseCase mantiene el catálogo de códigos de prenda KOAJ.
type KoajCodeUseCase struct {
	repo repository.KoajCodeRepository
}

// NewKoajCodeUseCase construye el caso de uso del catálogo.
func NewKoajCodeUseCase(repo repository.KoajCodeRepository) *KoajCodeUseCase {
	return &KoajCodeUseCase{repo: repo}
}

// List devuelve los códigos activos que cumplan búsqueda y ámbito.
func (uc *KoajCodeUseCase) List(search, appliesTo string) ([]dto.KoajCodeResponse, error) {
	filter := repository.KoajCodeFilter{
		Search:    strings.TrimSpace(search),
		AppliesTo: strings.ToLower(strings.TrimSpace(appliesTo)),
	}
	codes, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KoajCodeResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, toKoajCodeResponse(c))
	}
	return out, nil
}

// Create agrega un código nuevo al catálogo. Devuelve ErrDuplicate si el
// código ya existe.
func (uc *KoajCodeUseCase) Create(in dto.CreateKoajCodeRequest) (*dto.KoajCodeResponse, error) {
	code := strings.TrimSpace(in.Code)
	category := strings.TrimSpace(in.Category)
	if code == "" || category == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	appliesTo := strings.ToLower(strings.TrimSpace(in.AppliesTo))
	if appliesTo == "" {
		appliesTo = entity.AppliesTodos
	}

	now := time.Now()
	kc := &entity.KoajCode{
		Code:        code,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		AppliesTo:   appliesTo,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(kc); err != nil {
		return nil, err
	}
	resp := toKoajCodeResponse(kc)
	return &resp, nil
}

// Update modifica un código existente.
func (uc *KoajCodeUseCase) Update(id int64, in dto.UpdateKoajCodeRequest) (*dto.KoajCodeResponse, error) {
	kc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if kc == nil {
		return nil, domain.ErrNotFound
	}

	if newCode := strings.TrimSpace(in.Code); newCode != "" && newCode != kc.Code {
		other, err := uc.repo.GetByCode(newCode)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
		kc.Code = newCode
	}
	if category := strings.TrimSpace(in.Category); category != "" {
		kc.Category = category
	}
	if in.Description != nil {
		kc.Description = strings.TrimSpace(*in.Description)
	}
	if appliesTo := strings.ToLower(strings.TrimSpace(in.AppliesTo)); appliesTo != "" {
		kc.AppliesTo = appliesTo
	}
	if in.Active != nil {
		kc.Active = *in.Active
	}
	kc.UpdatedAt = time.Now()

	if err := uc.repo.Update(kc); err != nil {
		return nil, err
	}
	resp := toKoajCodeResponse(kc)
	return &resp, nil
}

// Deactivate desactiva un código (borrado lógico).
func (uc *KoajCodeUseCase) Deactivate(id int64) error {
	return uc.repo.Deactivate(id)
}

func toKoajCodeResponse(c *entity.KoajCode) dto.KoajCodeResponse {
	return dto.KoajCodeResponse{
		ID:          c.ID,
		Code:        c.Code,
		Category:    c.Category,
		Description: c.Description,
		AppliesTo:   c.AppliesTo,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
