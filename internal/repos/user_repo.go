package repos

import "github.com/jmoiron/sqlx"

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Hash     string `db:"password_hash"`
}

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) ByUsername(username string) (*User, error) {
	var u User
	err := r.db.Get(&u, `
	  SELECT id, username, password_hash
	  FROM usuario
	  WHERE LOWER(username) = LOWER(?)
	`, username)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
