package domain

// User is the authenticated actor for a request. The core only reads it (by ID,
// after token verification); creation and mutation go through the command store
// like every other resource.
type User struct {
	ID           UserID
	Nombre       string
	Apellido     string
	Email        string
	Telefono     string
	ImagenPerfil string
	PasswordHash string
}
