package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"angadBack/internal/models"
)

// ReclamationRepo is the storage collaborator for reclamations. The
// MySQL implementation lives in internal/repositories; tests inject an
// in-memory fake.
type ReclamationRepo interface {
	CreateReclamation(ctx context.Context, rec models.Reclamation) (models.Reclamation, error)
	GetReclamationByID(ctx context.Context, id int) (models.Reclamation, error)
	GetReclamationsByDemandeur(ctx context.Context, demandeurID int) ([]models.Reclamation, error)
	GetReclamationsByService(ctx context.Context, service models.ServiceType) ([]models.Reclamation, error)
	GetReclamationsByTechnicien(ctx context.Context, technicienID int) ([]models.Reclamation, error)
	UpdateReply(ctx context.Context, rec models.Reclamation) (models.Reclamation, error)
	CountByService(ctx context.Context, service models.ServiceType) (int64, error)
	CountByStatut(ctx context.Context, statut models.Statut) (int64, error)
	AvgResolutionSeconds(ctx context.Context) (*float64, error)
	SearchAdmin(ctx context.Context, filter models.ReclamationFilter) ([]models.Reclamation, int, error)
}

type UserRepo interface {
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	CreateSession(ctx context.Context, session models.Session) error
	GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error)
}

// FileStorage is the blob storage collaborator: raw bytes in, public
// reference out.
type FileStorage interface {
	UploadFile(file []byte, fileName, folder, contentType string) (string, error)
}

type ReclamationService struct {
	RecRepo  ReclamationRepo
	UserRepo UserRepo
	Storage  FileStorage
	ErrorLog *log.Logger
}

// CreateReclamationResult carries the saved reclamation plus a warning
// when the attached photo could not be stored. The reclamation itself
// is always persisted; photo storage is best effort.
type CreateReclamationResult struct {
	Reclamation  models.Reclamation `json:"reclamation"`
	PhotoWarning string             `json:"photo_warning,omitempty"`
}

func (s *ReclamationService) CreateReclamation(ctx context.Context, demandeurUsername string, req models.CreateReclamationRequest) (CreateReclamationResult, error) {
	demandeur, err := s.UserRepo.GetUserByUsername(ctx, demandeurUsername)
	if err != nil {
		return CreateReclamationResult{}, err
	}
	if demandeur.Role != models.RoleDemandeur {
		return CreateReclamationResult{}, models.ErrNotDemandeur
	}

	service, err := models.ParseServiceType(req.Service)
	if err != nil {
		return CreateReclamationResult{}, err
	}

	now := time.Now()
	rec := models.Reclamation{
		Service:      service,
		Titre:        req.Titre,
		Description:  req.Description,
		Statut:       models.StatutOuvert,
		DemandeurID:  demandeur.ID,
		Demandeur:    demandeur,
		DateCreation: now,
		DateUpdate:   now,
	}

	var warning string
	if strings.TrimSpace(req.PhotoBase64) != "" {
		path, err := s.storePhoto(req.PhotoBase64)
		if err != nil {
			warning = fmt.Sprintf("photo not stored: %v", err)
			if s.ErrorLog != nil {
				s.ErrorLog.Printf("CreateReclamation: %s", warning)
			}
		} else {
			rec.PhotoPath = &path
		}
	}

	saved, err := s.RecRepo.CreateReclamation(ctx, rec)
	if err != nil {
		return CreateReclamationResult{}, err
	}
	return CreateReclamationResult{Reclamation: saved, PhotoWarning: warning}, nil
}

func (s *ReclamationService) HistoryDemandeur(ctx context.Context, demandeurUsername string) ([]models.Reclamation, error) {
	demandeur, err := s.UserRepo.GetUserByUsername(ctx, demandeurUsername)
	if err != nil {
		return nil, err
	}
	return s.RecRepo.GetReclamationsByDemandeur(ctx, demandeur.ID)
}

func (s *ReclamationService) DetailForDemandeur(ctx context.Context, demandeurUsername string, id int) (models.Reclamation, error) {
	if _, err := s.UserRepo.GetUserByUsername(ctx, demandeurUsername); err != nil {
		return models.Reclamation{}, err
	}
	rec, err := s.RecRepo.GetReclamationByID(ctx, id)
	if err != nil {
		return models.Reclamation{}, err
	}
	if rec.Demandeur.Username != demandeurUsername {
		return models.Reclamation{}, models.ErrAccessDenied
	}
	return rec, nil
}

func (s *ReclamationService) ListForTechnician(ctx context.Context, techUsername string) ([]models.Reclamation, error) {
	tech, err := s.UserRepo.GetUserByUsername(ctx, techUsername)
	if err != nil {
		return nil, err
	}
	if tech.Role != models.RoleTechnicien || tech.Service == nil {
		return nil, models.ErrNotTechnicien
	}
	return s.RecRepo.GetReclamationsByService(ctx, *tech.Service)
}

func (s *ReclamationService) DetailForTechnician(ctx context.Context, techUsername string, id int) (models.Reclamation, error) {
	tech, err := s.UserRepo.GetUserByUsername(ctx, techUsername)
	if err != nil {
		return models.Reclamation{}, err
	}
	rec, err := s.RecRepo.GetReclamationByID(ctx, id)
	if err != nil {
		return models.Reclamation{}, err
	}
	if tech.Service == nil || rec.Service != *tech.Service {
		return models.Reclamation{}, models.ErrOutsideService
	}
	return rec, nil
}

func (s *ReclamationService) RepliedByTechnician(ctx context.Context, techUsername string) ([]models.Reclamation, error) {
	tech, err := s.UserRepo.GetUserByUsername(ctx, techUsername)
	if err != nil {
		return nil, err
	}
	if tech.Role != models.RoleTechnicien {
		return nil, models.ErrNotTechnicien
	}
	return s.RecRepo.GetReclamationsByTechnicien(ctx, tech.ID)
}

// Reply records a technician answer. The statut is applied verbatim:
// re-opening a resolved reclamation is allowed and a later technician
// overwrites the one recorded before (last responder wins).
func (s *ReclamationService) Reply(ctx context.Context, techUsername string, id int, req models.TechReplyRequest) (models.Reclamation, error) {
	tech, err := s.UserRepo.GetUserByUsername(ctx, techUsername)
	if err != nil {
		return models.Reclamation{}, err
	}
	rec, err := s.RecRepo.GetReclamationByID(ctx, id)
	if err != nil {
		return models.Reclamation{}, err
	}
	if tech.Role != models.RoleTechnicien || tech.Service == nil || rec.Service != *tech.Service {
		return models.Reclamation{}, models.ErrOutsideService
	}

	statut, err := models.ParseStatut(req.Statut)
	if err != nil {
		return models.Reclamation{}, err
	}

	now := time.Now()
	rec.TechnicienID = &tech.ID
	rec.Technicien = &tech
	rec.ReponseTechnicien = &req.Commentaire
	rec.Statut = statut
	rec.DateUpdate = now
	if statut.IsTerminal() {
		rec.DateResolution = &now
	}
	return s.RecRepo.UpdateReply(ctx, rec)
}

// storePhoto accepts a data URL ("data:image/...;base64,....") or raw
// base64, uploads the decoded bytes and returns the public reference.
func (s *ReclamationService) storePhoto(photoBase64 string) (string, error) {
	header, body := "", photoBase64
	if strings.HasPrefix(photoBase64, "data:") {
		if idx := strings.Index(photoBase64, ","); idx > 0 {
			header = photoBase64[:idx]
			body = photoBase64[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	ext, contentType := detectImageType(header)
	fileName := fmt.Sprintf("IMG_%s.%s", uuid.New().String(), ext)
	return s.Storage.UploadFile(data, fileName, "reclamations", contentType)
}

func detectImageType(header string) (ext, contentType string) {
	h := strings.ToLower(header)
	switch {
	case strings.Contains(h, "image/png"):
		return "png", "image/png"
	case strings.Contains(h, "image/webp"):
		return "webp", "image/webp"
	default:
		return "jpg", "image/jpeg"
	}
}
