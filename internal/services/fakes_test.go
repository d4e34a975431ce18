package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"angadBack/internal/models"
)

type fakeUserRepo struct {
	users    map[string]models.User
	sessions map[string]models.Session
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]models.User), sessions: make(map[string]models.Session)}
	for i, u := range users {
		u.ID = i + 1
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	u, ok := r.users[username]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if _, ok := r.users[user.Username]; ok {
		return models.User{}, models.ErrDuplicateUsername
	}
	user.ID = len(r.users) + 1
	r.users[user.Username] = user
	return user, nil
}

func (r *fakeUserRepo) CreateSession(_ context.Context, session models.Session) error {
	r.sessions[session.RefreshToken] = session
	return nil
}

func (r *fakeUserRepo) GetSessionByToken(_ context.Context, token string) (models.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return models.Session{}, models.ErrSessionNotFound
	}
	return s, nil
}

type fakeRecRepo struct {
	reclamations []models.Reclamation
	nextID       int
	lastFilter   models.ReclamationFilter
}

func (r *fakeRecRepo) CreateReclamation(_ context.Context, rec models.Reclamation) (models.Reclamation, error) {
	r.nextID++
	rec.ID = r.nextID
	r.reclamations = append(r.reclamations, rec)
	return rec, nil
}

func (r *fakeRecRepo) GetReclamationByID(_ context.Context, id int) (models.Reclamation, error) {
	for _, rec := range r.reclamations {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.Reclamation{}, models.ErrReclamationNotFound
}

func (r *fakeRecRepo) GetReclamationsByDemandeur(_ context.Context, demandeurID int) ([]models.Reclamation, error) {
	var out []models.Reclamation
	for _, rec := range r.reclamations {
		if rec.DemandeurID == demandeurID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateCreation.After(out[j].DateCreation) })
	return out, nil
}

func (r *fakeRecRepo) GetReclamationsByService(_ context.Context, service models.ServiceType) ([]models.Reclamation, error) {
	var out []models.Reclamation
	for _, rec := range r.reclamations {
		if rec.Service == service {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateCreation.After(out[j].DateCreation) })
	return out, nil
}

func (r *fakeRecRepo) GetReclamationsByTechnicien(_ context.Context, technicienID int) ([]models.Reclamation, error) {
	var out []models.Reclamation
	for _, rec := range r.reclamations {
		if rec.TechnicienID != nil && *rec.TechnicienID == technicienID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateUpdate.After(out[j].DateUpdate) })
	return out, nil
}

func (r *fakeRecRepo) UpdateReply(_ context.Context, rec models.Reclamation) (models.Reclamation, error) {
	for i := range r.reclamations {
		if r.reclamations[i].ID == rec.ID {
			r.reclamations[i] = rec
			return rec, nil
		}
	}
	return models.Reclamation{}, models.ErrReclamationNotFound
}

func (r *fakeRecRepo) CountByService(_ context.Context, service models.ServiceType) (int64, error) {
	var n int64
	for _, rec := range r.reclamations {
		if rec.Service == service {
			n++
		}
	}
	return n, nil
}

func (r *fakeRecRepo) CountByStatut(_ context.Context, statut models.Statut) (int64, error) {
	var n int64
	for _, rec := range r.reclamations {
		if rec.Statut == statut {
			n++
		}
	}
	return n, nil
}

func (r *fakeRecRepo) AvgResolutionSeconds(_ context.Context) (*float64, error) {
	var sum float64
	var n int
	for _, rec := range r.reclamations {
		if rec.DateResolution != nil {
			sum += rec.DateResolution.Sub(rec.DateCreation).Seconds()
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := sum / float64(n)
	return &avg, nil
}

func (r *fakeRecRepo) SearchAdmin(_ context.Context, filter models.ReclamationFilter) ([]models.Reclamation, int, error) {
	r.lastFilter = filter

	var matched []models.Reclamation
	for _, rec := range r.reclamations {
		if filter.Statut != nil && rec.Statut != *filter.Statut {
			continue
		}
		if filter.Service != nil && rec.Service != *filter.Service {
			continue
		}
		if filter.Query != "" {
			q := strings.ToLower(filter.Query)
			if !strings.Contains(strings.ToLower(rec.Titre), q) &&
				!strings.Contains(strings.ToLower(rec.Description), q) {
				continue
			}
		}
		matched = append(matched, rec)
	}

	if filter.Sort == "date_update" {
		sort.Slice(matched, func(i, j int) bool { return matched[i].DateUpdate.After(matched[j].DateUpdate) })
	} else {
		sort.Slice(matched, func(i, j int) bool { return matched[i].DateCreation.After(matched[j].DateCreation) })
	}

	total := len(matched)
	start := filter.Page * filter.Size
	if start > total {
		start = total
	}
	end := start + filter.Size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

type fakeStorage struct {
	uploads []string
	fail    bool
}

func (s *fakeStorage) UploadFile(_ []byte, fileName, folder, contentType string) (string, error) {
	if s.fail {
		return "", errors.New("storage unavailable")
	}
	path := "https://blob.test/" + folder + "/" + fileName
	s.uploads = append(s.uploads, contentType)
	return path, nil
}
