package repos

import (
	"minimarket/internal/domain"

	"github.com/jmoiron/sqlx"
)

// ProductRepo runs over any sqlx executor so the same queries work on the
// shared *sqlx.DB and on the per-request *sqlx.Tx.
type ProductRepo struct{ db sqlx.Ext }

func NewProductRepo(db sqlx.Ext) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `
  p.id, p.nombreProducto, p.idCategoria, c.nombreCategoria AS categoria,
  p.stock, p.precio, COALESCE(p.descripcion,'') AS descripcion, COALESCE(p.codigo,'') AS codigo,
  COALESCE(p.fecha_elaboracion,'') AS fecha_elaboracion, COALESCE(p.fecha_caducidad,'') AS fecha_caducidad,
  p.condicion`

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := sqlx.Select(r.db, &out, `
	  SELECT `+productColumns+`
	  FROM producto AS p
	  INNER JOIN categoria AS c ON (p.idCategoria = c.id)
	  ORDER BY p.id ASC
	`)
	return out, err
}

// Get returns sql.ErrNoRows when no product has that id.
func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := sqlx.Get(r.db, &p, `
	  SELECT `+productColumns+`
	  FROM producto AS p
	  INNER JOIN categoria AS c ON (p.idCategoria = c.id)
	  WHERE p.id = ?
	`, id)
	return p, err
}

// Save updates when the product carries an id (> 0), inserts otherwise.
// Identifier presence is the sole insert/update signal; callers uphold it.
func (r *ProductRepo) Save(p domain.Product) error {
	if p.ID > 0 {
		_, err := r.db.Exec(`
		  UPDATE producto
		  SET nombreProducto=?, idCategoria=?, stock=?, precio=?, descripcion=?, codigo=?,
		      fecha_elaboracion=?, fecha_caducidad=?
		  WHERE id=?
		`, p.Name, p.CategoryID, p.Stock, p.Price, p.Description, p.Code, p.MadeOn, p.ExpiresOn, p.ID)
		return err
	}
	_, err := r.db.Exec(`
	  INSERT INTO producto
	    (nombreProducto, idCategoria, stock, precio, descripcion, codigo, fecha_elaboracion, fecha_caducidad, condicion)
	  VALUES (?,?,?,?,?,?,?,?,1)
	`, p.Name, p.CategoryID, p.Stock, p.Price, p.Description, p.Code, p.MadeOn, p.ExpiresOn)
	return err
}

func (r *ProductRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM producto WHERE id = ?`, id)
	return err
}

func (r *ProductRepo) Activate(id int64) error {
	_, err := r.db.Exec(`UPDATE producto SET condicion = 1 WHERE id = ?`, id)
	return err
}

func (r *ProductRepo) Deactivate(id int64) error {
	_, err := r.db.Exec(`UPDATE producto SET condicion = 0 WHERE id = ?`, id)
	return err
}
