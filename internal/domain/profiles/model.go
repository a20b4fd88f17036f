package profiles

import "time"

// FavoriteEntry snapshotea los campos de display al momento de favoritear,
// en vez de re-joinear la ficha viva (decisión heredada: el favorito sigue
// mostrando lo que el usuario vio, aunque la ficha cambie o se borre).
type FavoriteEntry struct {
	PetID string
	Name  string
	Image string
}

// Profile guarda las preferencias (tags libres) y favoritos de un usuario.
type Profile struct {
	UserID string

	Preferences []string
	Favorites   []FavoriteEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}
