package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
)

var _ repository.HornTypeRepository = (*HornTypeRepo)(nil)

// HornTypeRepo implementación del puerto HornTypeRepository sobre PostgreSQL.
type HornTypeRepo struct {
	q Querier
}

// NewHornTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHornTypeRepository(q Querier) *HornTypeRepo {
	return &HornTypeRepo{q: q}
}

// Create persiste un tipo de bocina nuevo.
func (r *HornTypeRepo) Create(hornType *entity.HornType) error {
	query := `
		INSERT INTO horn_types (id, code, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		hornType.ID, hornType.Code, hornType.Name, hornType.Description,
		hornType.CreatedAt, hornType.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert horn type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de bocina por ID, o nil si no existe.
func (r *HornTypeRepo) GetByID(id string) (*entity.HornType, error) {
	return r.getBy("id", id)
}

// GetByCode obtiene un tipo de bocina por código único, o nil si no existe.
func (r *HornTypeRepo) GetByCode(code string) (*entity.HornType, error) {
	return r.getBy("code", code)
}

func (r *HornTypeRepo) getBy(field, value string) (*entity.HornType, error) {
	query := `SELECT id, code, name, description, created_at, updated_at FROM horn_types WHERE ` + field + ` = $1`
	var h entity.HornType
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&h.ID, &h.Code, &h.Name, &h.Description, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get horn type: %w", err)
	}
	return &h, nil
}

// Update actualiza nombre y descripción.
func (r *HornTypeRepo) Update(hornType *entity.HornType) error {
	query := `UPDATE horn_types SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		hornType.ID, hornType.Name, hornType.Description, hornType.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update horn type: %w", err)
	}
	return nil
}

// List lista tipos de bocina con paginación, ordenados por código.
func (r *HornTypeRepo) List(limit, offset int) ([]*entity.HornType, error) {
	query := `SELECT id, code, name, description, created_at, updated_at
		FROM horn_types ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list horn types: %w", err)
	}
	defer rows.Close()
	var list []*entity.HornType
	for rows.Next() {
		var h entity.HornType
		if err := rows.Scan(&h.ID, &h.Code, &h.Name, &h.Description, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan horn type: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Delete elimina un tipo de bocina; sus entradas de BOM caen en cascada.
func (r *HornTypeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM horn_types WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete horn type: %w", err)
	}
	return nil
}

// ListBOM devuelve las entradas de BOM en orden de inserción (created_at, id).
// El planificador depende de ese orden para salida determinista.
func (r *HornTypeRepo) ListBOM(hornTypeID string) ([]*entity.BOMEntry, error) {
	query := `SELECT id, horn_type_id, component_id, quantity_per_horn, created_at
		FROM bom_entries WHERE horn_type_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, hornTypeID)
	if err != nil {
		return nil, fmt.Errorf("list bom: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOMEntry
	for rows.Next() {
		var e entity.BOMEntry
		if err := rows.Scan(&e.ID, &e.HornTypeID, &e.ComponentID, &e.QuantityPerHorn, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// GetBOMEntry obtiene la entrada de BOM de un par (tipo, componente), o nil si no existe.
func (r *HornTypeRepo) GetBOMEntry(hornTypeID, componentID string) (*entity.BOMEntry, error) {
	query := `SELECT id, horn_type_id, component_id, quantity_per_horn, created_at
		FROM bom_entries WHERE horn_type_id = $1 AND component_id = $2`
	var e entity.BOMEntry
	err := r.q.QueryRow(context.Background(), query, hornTypeID, componentID).Scan(
		&e.ID, &e.HornTypeID, &e.ComponentID, &e.QuantityPerHorn, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom entry: %w", err)
	}
	return &e, nil
}

// AddBOMEntry agrega una entrada de BOM. El par (tipo, componente) es único.
func (r *HornTypeRepo) AddBOMEntry(entry *entity.BOMEntry) error {
	query := `
		INSERT INTO bom_entries (id, horn_type_id, component_id, quantity_per_horn, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.HornTypeID, entry.ComponentID, entry.QuantityPerHorn, entry.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bom entry: %w", err)
	}
	return nil
}

// UpdateBOMEntry actualiza la cantidad por bocina de una entrada.
func (r *HornTypeRepo) UpdateBOMEntry(entry *entity.BOMEntry) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE bom_entries SET quantity_per_horn = $2 WHERE id = $1`,
		entry.ID, entry.QuantityPerHorn,
	)
	if err != nil {
		return fmt.Errorf("update bom entry: %w", err)
	}
	return nil
}

// RemoveBOMEntry elimina la entrada de BOM de un par (tipo, componente).
func (r *HornTypeRepo) RemoveBOMEntry(hornTypeID, componentID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM bom_entries WHERE horn_type_id = $1 AND component_id = $2`,
		hornTypeID, componentID,
	)
	if err != nil {
		return fmt.Errorf("delete bom entry: %w", err)
	}
	return nil
}
