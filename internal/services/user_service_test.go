package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"angadBack/internal/models"
	"angadBack/utils"
)

func newUserService(t *testing.T, repo *fakeUserRepo) *UserService {
	t.Helper()
	manager, err := utils.NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return &UserService{UserRepo: repo, TokenManager: manager, SigningKey: "test-signing-key"}
}

func TestSignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}
	it := models.ServiceIT
	repo := newFakeUserRepo(models.User{
		Username: "bob", Password: string(hash), Role: models.RoleTechnicien, Service: &it,
	})
	svc := newUserService(t, repo)

	resp, err := svc.SignIn(context.Background(), models.SignInRequest{Username: "bob", Password: "s3cret"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if resp.Username != "bob" || resp.Role != models.RoleTechnicien {
		t.Fatalf("unexpected identity %s/%s", resp.Username, resp.Role)
	}
	if resp.Service == nil || *resp.Service != models.ServiceIT {
		t.Fatal("expected the technicien service in the response")
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if _, err := repo.GetSessionByToken(context.Background(), resp.RefreshToken); err != nil {
		t.Fatalf("expected a stored session: %v", err)
	}
}

func TestSignInBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}
	repo := newFakeUserRepo(models.User{Username: "alice", Password: string(hash), Role: models.RoleDemandeur})
	svc := newUserService(t, repo)
	ctx := context.Background()

	// Wrong password and unknown user must be indistinguishable.
	_, errWrong := svc.SignIn(ctx, models.SignInRequest{Username: "alice", Password: "nope"})
	_, errUnknown := svc.SignIn(ctx, models.SignInRequest{Username: "ghost", Password: "nope"})
	if !errors.Is(errWrong, models.ErrInvalidCredentials) || !errors.Is(errUnknown, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials twice, got %v / %v", errWrong, errUnknown)
	}
}

func TestCreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(t, repo)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, models.CreateUserRequest{
		Username: "carol", Password: "pw", Role: "TECHNICIEN", Service: "EQUIPEMENT",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Service == nil || *user.Service != models.ServiceEquipement {
		t.Fatal("expected the technicien to carry a service")
	}
	if user.Password == "pw" {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	if _, err := svc.CreateUser(ctx, models.CreateUserRequest{
		Username: "ted", Password: "pw", Role: "TECHNICIEN",
	}); !errors.Is(err, models.ErrInvalidService) {
		t.Fatalf("expected ErrInvalidService for a technicien without service, got %v", err)
	}
	if _, err := svc.CreateUser(ctx, models.CreateUserRequest{
		Username: "dan", Password: "pw", Role: "DEMANDEUR", Service: "IT",
	}); !errors.Is(err, models.ErrInvalidService) {
		t.Fatalf("expected ErrInvalidService for a demandeur with service, got %v", err)
	}
	if _, err := svc.CreateUser(ctx, models.CreateUserRequest{
		Username: "eve", Password: "pw", Role: "SUPERVISOR",
	}); !errors.Is(err, models.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.CreateUser(ctx, models.CreateUserRequest{
		Username: "carol", Password: "pw", Role: "ADMIN",
	}); !errors.Is(err, models.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}
