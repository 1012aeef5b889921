package repository

import "github.com/koajpc/backoffice-api/internal/domain/entity"

// KoajCodeFilter criterios de búsqueda del catálogo de códigos.
type KoajCodeFilter struct {
	Search    string // busca en code y category
	AppliesTo string // hombre, mujer, niño, niña; vacío o "todos" no filtra
}

// KoajCodeRepository define el puerto de persistencia para el catálogo de
// códigos KOAJ.
type KoajCodeRepository interface {
	Create(code *entity.KoajCode) error
	GetByID(id int64) (*entity.KoajCode, error)
	GetByCode(code string) (*entity.KoajCode, error)
	List(filter KoajCodeFilter) ([]*entity.KoajCode, error)
	Update(code *entity.KoajCode) error
	Deactivate(id int64) error
}
