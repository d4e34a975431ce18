package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"angadBack/internal/models"
)

type ReclamationRepository struct {
	DB *sql.DB
}

const reclamationColumns = `
		r.id, r.service, r.titre, r.description, r.photo_path, r.statut,
		r.demandeur_id, d.username, d.role,
		r.technicien_id, t.username, t.role, t.service,
		r.reponse_technicien, r.date_creation, r.date_update, r.date_resolution
`

const reclamationJoins = `
		FROM reclamations r
		JOIN users d ON r.demandeur_id = d.id
		LEFT JOIN users t ON r.technicien_id = t.id
`

func scanReclamation(row interface{ Scan(...interface{}) error }) (models.Reclamation, error) {
	var (
		rec         models.Reclamation
		photoPath   sql.NullString
		techID      sql.NullInt64
		techName    sql.NullString
		techRole    sql.NullString
		techService sql.NullString
		reponse     sql.NullString
		resolution  sql.NullTime
	)

	err := row.Scan(
		&rec.ID, &rec.Service, &rec.Titre, &rec.Description, &photoPath, &rec.Statut,
		&rec.DemandeurID, &rec.Demandeur.Username, &rec.Demandeur.Role,
		&techID, &techName, &techRole, &techService,
		&reponse, &rec.DateCreation, &rec.DateUpdate, &resolution,
	)
	if err != nil {
		return models.Reclamation{}, err
	}

	rec.Demandeur.ID = rec.DemandeurID
	if photoPath.Valid {
		rec.PhotoPath = &photoPath.String
	}
	if techID.Valid {
		id := int(techID.Int64)
		rec.TechnicienID = &id
		tech := models.User{ID: id, Username: techName.String, Role: models.Role(techRole.String)}
		if techService.Valid {
			svc := models.ServiceType(techService.String)
			tech.Service = &svc
		}
		rec.Technicien = &tech
	}
	if reponse.Valid {
		rec.ReponseTechnicien = &reponse.String
	}
	if resolution.Valid {
		rec.DateResolution = &resolution.Time
	}
	return rec, nil
}

func (r *ReclamationRepository) queryReclamations(ctx context.Context, query string, args ...interface{}) ([]models.Reclamation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reclamations []models.Reclamation
	for rows.Next() {
		rec, err := scanReclamation(rows)
		if err != nil {
			return nil, err
		}
		reclamations = append(reclamations, rec)
	}
	return reclamations, rows.Err()
}

func (r *ReclamationRepository) CreateReclamation(ctx context.Context, rec models.Reclamation) (models.Reclamation, error) {
	query := `
		INSERT INTO reclamations
			(service, titre, description, photo_path, statut, demandeur_id, date_creation, date_update)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		rec.Service, rec.Titre, rec.Description, rec.PhotoPath, rec.Statut,
		rec.DemandeurID, rec.DateCreation, rec.DateUpdate,
	)
	if err != nil {
		return models.Reclamation{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Reclamation{}, err
	}
	return r.GetReclamationByID(ctx, int(id))
}

func (r *ReclamationRepository) GetReclamationByID(ctx context.Context, id int) (models.Reclamation, error) {
	query := `SELECT ` + reclamationColumns + reclamationJoins + ` WHERE r.id = ?`

	rec, err := scanReclamation(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Reclamation{}, models.ErrReclamationNotFound
	}
	if err != nil {
		return models.Reclamation{}, err
	}
	return rec, nil
}

func (r *ReclamationRepository) GetReclamationsByDemandeur(ctx context.Context, demandeurID int) ([]models.Reclamation, error) {
	query := `SELECT ` + reclamationColumns + reclamationJoins + `
		WHERE r.demandeur_id = ?
		ORDER BY r.date_creation DESC`
	return r.queryReclamations(ctx, query, demandeurID)
}

func (r *ReclamationRepository) GetReclamationsByService(ctx context.Context, service models.ServiceType) ([]models.Reclamation, error) {
	query := `SELECT ` + reclamationColumns + reclamationJoins + `
		WHERE r.service = ?
		ORDER BY r.date_creation DESC`
	return r.queryReclamations(ctx, query, service)
}

func (r *ReclamationRepository) GetReclamationsByTechnicien(ctx context.Context, technicienID int) ([]models.Reclamation, error) {
	query := `SELECT ` + reclamationColumns + reclamationJoins + `
		WHERE r.technicien_id = ?
		ORDER BY r.date_update DESC`
	return r.queryReclamations(ctx, query, technicienID)
}

func (r *ReclamationRepository) UpdateReply(ctx context.Context, rec models.Reclamation) (models.Reclamation, error) {
	query := `
		UPDATE reclamations
		SET technicien_id = ?, reponse_technicien = ?, statut = ?, date_update = ?, date_resolution = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		rec.TechnicienID, rec.ReponseTechnicien, rec.Statut,
		rec.DateUpdate, rec.DateResolution, rec.ID,
	)
	if err != nil {
		return models.Reclamation{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Reclamation{}, err
	}
	if rowsAffected == 0 {
		// The reply may be a no-op update; only report missing rows.
		if _, err := r.GetReclamationByID(ctx, rec.ID); err != nil {
			return models.Reclamation{}, err
		}
	}
	return r.GetReclamationByID(ctx, rec.ID)
}

func (r *ReclamationRepository) CountByService(ctx context.Context, service models.ServiceType) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM reclamations WHERE service = ?`
	err := r.DB.QueryRowContext(ctx, query, service).Scan(&count)
	return count, err
}

func (r *ReclamationRepository) CountByStatut(ctx context.Context, statut models.Statut) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM reclamations WHERE statut = ?`
	err := r.DB.QueryRowContext(ctx, query, statut).Scan(&count)
	return count, err
}

func (r *ReclamationRepository) AvgResolutionSeconds(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	query := `
		SELECT AVG(TIMESTAMPDIFF(SECOND, date_creation, date_resolution))
		FROM reclamations
		WHERE date_resolution IS NOT NULL
	`
	if err := r.DB.QueryRowContext(ctx, query).Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// Sortable columns for the admin search; anything else falls back to
// the creation date so user input never reaches the ORDER BY clause.
var adminSortColumns = map[string]string{
	"date_creation": "r.date_creation",
	"date_update":   "r.date_update",
}

func (r *ReclamationRepository) SearchAdmin(ctx context.Context, filter models.ReclamationFilter) ([]models.Reclamation, int, error) {
	var (
		conditions []string
		params     []interface{}
	)

	if filter.Statut != nil {
		conditions = append(conditions, "r.statut = ?")
		params = append(params, *filter.Statut)
	}
	if filter.Service != nil {
		conditions = append(conditions, "r.service = ?")
		params = append(params, *filter.Service)
	}
	if filter.Query != "" {
		conditions = append(conditions, "(LOWER(r.titre) LIKE ? OR LOWER(r.description) LIKE ?)")
		like := "%" + strings.ToLower(filter.Query) + "%"
		params = append(params, like, like)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM reclamations r` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := adminSortColumns[filter.Sort]
	if !ok {
		sortColumn = "r.date_creation"
	}

	query := `SELECT ` + reclamationColumns + reclamationJoins + where +
		fmt.Sprintf(" ORDER BY %s DESC", sortColumn) +
		" LIMIT ? OFFSET ?"
	params = append(params, filter.Size, filter.Page*filter.Size)

	reclamations, err := r.queryReclamations(ctx, query, params...)
	if err != nil {
		return nil, 0, err
	}
	return reclamations, total, nil
}
