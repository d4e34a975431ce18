package models

import "time"

type ServiceType string

const (
	ServiceIT             ServiceType = "IT"
	ServiceEquipement     ServiceType = "EQUIPEMENT"
	ServiceInfrastructure ServiceType = "INFRASTRUCTURE"
)

func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case ServiceIT, ServiceEquipement, ServiceInfrastructure:
		return ServiceType(s), nil
	}
	return "", ErrInvalidService
}

func AllServiceTypes() []ServiceType {
	return []ServiceType{ServiceIT, ServiceEquipement, ServiceInfrastructure}
}

type Statut string

const (
	StatutOuvert     Statut = "OUVERT"
	StatutEnCours    Statut = "EN_COURS"
	StatutResolue    Statut = "RESOLUE"
	StatutNonResolue Statut = "NON_RESOLUE"
)

func ParseStatut(s string) (Statut, error) {
	switch Statut(s) {
	case StatutOuvert, StatutEnCours, StatutResolue, StatutNonResolue:
		return Statut(s), nil
	}
	return "", ErrInvalidStatut
}

func AllStatuts() []Statut {
	return []Statut{StatutOuvert, StatutEnCours, StatutResolue, StatutNonResolue}
}

// IsTerminal reports whether the statut closes a reclamation; only
// terminal statuts carry a resolution timestamp.
func (s Statut) IsTerminal() bool {
	return s == StatutResolue || s == StatutNonResolue
}

type Reclamation struct {
	ID                int         `json:"id"`
	Service           ServiceType `json:"service"`
	Titre             string      `json:"titre"`
	Description       string      `json:"description"`
	PhotoPath         *string     `json:"photo_path,omitempty"`
	Statut            Statut      `json:"statut"`
	DemandeurID       int         `json:"demandeur_id"`
	Demandeur         User        `json:"demandeur"`
	TechnicienID      *int        `json:"technicien_id,omitempty"`
	Technicien        *User       `json:"technicien,omitempty"`
	ReponseTechnicien *string     `json:"reponse_technicien,omitempty"`
	DateCreation      time.Time   `json:"date_creation"`
	DateUpdate        time.Time   `json:"date_update"`
	DateResolution    *time.Time  `json:"date_resolution,omitempty"`
}

type CreateReclamationRequest struct {
	Service     string `json:"service"`
	Titre       string `json:"titre"`
	Description string `json:"description"`
	PhotoBase64 string `json:"photo_base64,omitempty"`
}

type TechReplyRequest struct {
	Commentaire string `json:"commentaire"`
	Statut      string `json:"statut"`
}

// ReclamationFilter narrows the admin search. Nil statut/service mean
// no filter; Query matches titre or description case-insensitively.
type ReclamationFilter struct {
	Statut  *Statut
	Service *ServiceType
	Query   string
	Page    int
	Size    int
	Sort    string
}

type ReclamationPage struct {
	Content       []Reclamation `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int           `json:"total_elements"`
	TotalPages    int           `json:"total_pages"`
}
