package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo catalog if DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure login users exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS categoria(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nombreCategoria TEXT NOT NULL,
  descripcion TEXT,
  estado INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categoria_nombre ON categoria(LOWER(nombreCategoria));

CREATE TABLE IF NOT EXISTS producto(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nombreProducto TEXT NOT NULL,
  idCategoria INTEGER NOT NULL REFERENCES categoria(id) ON DELETE RESTRICT,
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  precio NUMERIC NOT NULL CHECK (precio > 0),
  descripcion TEXT,
  codigo TEXT,
  fecha_elaboracion TEXT,
  fecha_caducidad TEXT,
  condicion INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_producto_categoria ON producto(idCategoria);

CREATE TABLE IF NOT EXISTS usuario(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categoria`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categorias/productos")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categoria(nombreCategoria,descripcion,estado) VALUES
	  ('Lácteos','Leche y derivados',1),
	  ('Bebidas','Jugos, agua y gaseosas',1),
	  ('Panadería','Pan y bollería',1)`)

	tx.MustExec(`INSERT INTO producto
	  (nombreProducto,idCategoria,stock,precio,descripcion,codigo,fecha_elaboracion,fecha_caducidad,condicion) VALUES
	  ('Leche Entera 1L',1,40,1.25,'Leche pasteurizada','LCT-001','2026-08-01','2026-09-15',1),
	  ('Queso Fresco 500g',1,15,3.80,'Queso fresco de vaca','LCT-002','2026-08-10','2026-09-10',1),
	  ('Jugo de Naranja 1L',2,25,2.10,'Jugo natural sin azúcar','BEB-001','2026-08-20','2026-10-20',1),
	  ('Pan Integral',3,30,1.60,'Pan integral de molde','PAN-001','2026-08-28','2026-09-05',1)`)

	return tx.Commit()
}

// seedUsers ensures the demo login exists (idempotent).
func seedUsers(db *sqlx.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO usuario(username,password_hash) VALUES(?,?)
		ON CONFLICT(username) DO NOTHING
	`, "admin", string(hash))
	return err
}
