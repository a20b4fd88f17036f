package pets

import "context"

// NameOf expone el nombre para snapshotear pet_name al crear una solicitud.
// Vive en este archivo para evitar ciclos de imports (pets <-> applications).
func (s *Service) NameOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}
