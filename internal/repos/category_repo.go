package repos

import (
	"minimarket/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db sqlx.Ext }

func NewCategoryRepo(db sqlx.Ext) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := sqlx.Select(r.db, &out, `
	  SELECT id, nombreCategoria, COALESCE(descripcion,'') AS descripcion, estado
	  FROM categoria
	  ORDER BY id ASC
	`)
	return out, err
}

func (r *CategoryRepo) Get(id int64) (domain.Category, error) {
	var cat domain.Category
	err := sqlx.Get(r.db, &cat, `
	  SELECT id, nombreCategoria, COALESCE(descripcion,'') AS descripcion, estado
	  FROM categoria
	  WHERE id = ?
	`, id)
	return cat, err
}

func (r *CategoryRepo) Save(cat domain.Category) error {
	if cat.ID > 0 {
		_, err := r.db.Exec(`
		  UPDATE categoria SET nombreCategoria=?, descripcion=? WHERE id=?
		`, cat.Name, cat.Description, cat.ID)
		return err
	}
	_, err := r.db.Exec(`
	  INSERT INTO categoria(nombreCategoria, descripcion, estado) VALUES(?,?,1)
	`, cat.Name, cat.Description)
	return err
}

func (r *CategoryRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM categoria WHERE id = ?`, id)
	return err
}

func (r *CategoryRepo) Activate(id int64) error {
	_, err := r.db.Exec(`UPDATE categoria SET estado = 1 WHERE id = ?`, id)
	return err
}

func (r *CategoryRepo) Deactivate(id int64) error {
	_, err := r.db.Exec(`UPDATE categoria SET estado = 0 WHERE id = ?`, id)
	return err
}
