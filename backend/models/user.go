package models

// User is the profile handed to us by the external identity provider on
// login. It is stored as-is, without validation. RegNo partitions every
// user-scoped document in the store.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
	RegNo   string `json:"regNo"`
}
