package models

// Stats mirrors the admin dashboard payload: reclamation counts per
// service and per statut, plus the average resolution time in whole
// minutes (nil until at least one reclamation has been resolved).
type Stats struct {
	ParService                    map[ServiceType]int64 `json:"parService"`
	ParStatut                     map[Statut]int64      `json:"parStatut"`
	DureeMoyenneResolutionMinutes *int64                `json:"dureeMoyenneResolutionMinutes"`
}
