package profiles

// Toggle devuelve la lista de favoritos resultante de togglear una entrada:
// si ya existe una con ese PetID se quita, si no se agrega al final. Puro,
// nunca muta la lista recibida. Cada llamada es estrictamente add-or-remove
// (nunca no-op); dos toggles seguidos componen a la lista original.
func Toggle(favorites []FavoriteEntry, entry FavoriteEntry) []FavoriteEntry {
	out := make([]FavoriteEntry, 0, len(favorites)+1)

	removed := false
	for _, f := range favorites {
		if f.PetID == entry.PetID {
			removed = true
			continue
		}
		out = append(out, f)
	}

	if !removed {
		out = append(out, entry)
	}
	return out
}

// IsFavorite reporta si la lista ya contiene el PetID.
func IsFavorite(favorites []FavoriteEntry, petID string) bool {
	for _, f := range favorites {
		if f.PetID == petID {
			return true
		}
	}
	return false
}
