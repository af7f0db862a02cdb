package domain

type Category struct {
	ID          int64  `db:"id"`
	Name        string `db:"nombreCategoria"`
	Description string `db:"descripcion"`
	Active      bool   `db:"estado"`
}

type Product struct {
	ID           int64   `db:"id"`
	Name         string  `db:"nombreProducto"`
	CategoryID   int64   `db:"idCategoria"`
	CategoryName string  `db:"categoria"` // joined from categoria.nombreCategoria
	Stock        int     `db:"stock"`
	Price        float64 `db:"precio"`
	Description  string  `db:"descripcion"`
	Code         string  `db:"codigo"`
	MadeOn       string  `db:"fecha_elaboracion"` // YYYY-MM-DD
	ExpiresOn    string  `db:"fecha_caducidad"`   // YYYY-MM-DD
	Active       bool    `db:"condicion"`
}
