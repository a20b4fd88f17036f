package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-adoption-service/internal/domain/applications"
)

type ApplicationsRepo struct {
	db *sql.DB
}

func NewApplicationsRepo(db *sql.DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

const applicationColumns = `
	id, pet_id, pet_name,
	applicant_id, applicant_name, email,
	status, verification_notes,
	created_at, updated_at
`

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (
			id, pet_id, pet_name,
			applicant_id, applicant_name, email,
			status, verification_notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.PetID,
		a.PetName,
		a.ApplicantID,
		a.ApplicantName,
		a.Email,
		a.Status,
		a.VerificationNotes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id string) (applications.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return applications.Application{}, applications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE id = $1
	`, id)

	a, err := scanApplication(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return applications.Application{}, applications.ErrNotFound
		}
		return applications.Application{}, err
	}
	return a, nil
}

func (r *ApplicationsRepo) List(ctx context.Context) ([]applications.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *ApplicationsRepo) ListByApplicant(ctx context.Context, applicantID string) ([]applications.Application, error) {
	applicantID = strings.TrimSpace(applicantID)
	if applicantID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE applicant_id = $1
		ORDER BY created_at ASC
	`, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

// Update escribe la transición con CAS sobre el status en el WHERE:
// si ninguna fila calza, o la solicitud no existe (ErrNotFound) o el status
// ya se movió (ErrStaleTransition).
func (r *ApplicationsRepo) Update(ctx context.Context, a applications.Application, expected applications.Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE applications
		SET
			status = $3,
			verification_notes = $4,
			updated_at = $5
		WHERE id = $1 AND status = $2
	`,
		a.ID,
		expected,
		a.Status,
		a.VerificationNotes,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE id = $1)`, a.ID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return applications.ErrNotFound
	}
	return applications.ErrStaleTransition
}

func (r *ApplicationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return applications.ErrNotFound
	}
	return nil
}

func scanApplication(row rowScanner) (applications.Application, error) {
	var a applications.Application
	if err := row.Scan(
		&a.ID,
		&a.PetID,
		&a.PetName,
		&a.ApplicantID,
		&a.ApplicantName,
		&a.Email,
		&a.Status,
		&a.VerificationNotes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return applications.Application{}, err
	}
	return a, nil
}

func collectApplications(rows *sql.Rows) ([]applications.Application, error) {
	out := make([]applications.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
