package models

// User is an account row. HashedPassword never leaves the server.
type User struct {
	ID             string `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Username       string `db:"username" json:"username"`
	HashedPassword string `db:"hashed_password" json:"-"`
}
