package service

import (
	"errors"
	"testing"

	"github.com/DesVallees/VAQ-sub000/internal/model"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*model.User{}}
}

func (r *fakeUserRepo) add(t *testing.T, email, password string, isAdmin, isActive bool) *model.User {
	t.Helper()
	user := &model.User{
		Email:    email,
		FullName: "Cuenta de prueba",
		IsAdmin:  isAdmin,
		IsActive: isActive,
	}
	user.ID = uuid.New()
	if err := user.SetPassword(password); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	r.byEmail[email] = user
	return user
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) FindAll() ([]model.User, error)        { return nil, nil }
func (r *fakeUserRepo) Create(user *model.User) error         { r.byEmail[user.Email] = user; return nil }
func (r *fakeUserRepo) Update(user *model.User) error         { r.byEmail[user.Email] = user; return nil }
func (r *fakeUserRepo) Delete(uuid.UUID, string) error        { return nil }
func (r *fakeUserRepo) UpdatePassword(uuid.UUID, string) error { return nil }

func TestLogin_InvalidEmailFormat(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Login("no-es-un-correo", "whatever")
	if !errors.Is(err, ErrCorreoInvalido) {
		t.Fatalf("expected ErrCorreoInvalido, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Login("nadie@vaqmas.com", "whatever")
	if !errors.Is(err, ErrUsuarioNoEncontrado) {
		t.Fatalf("expected ErrUsuarioNoEncontrado, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(t, "admin@vaqmas.com", "correcta123", true, true)
	svc := NewAuthService(repo)

	_, err := svc.Login("admin@vaqmas.com", "incorrecta")
	if !errors.Is(err, ErrContrasenaIncorrecta) {
		t.Fatalf("expected ErrContrasenaIncorrecta, got %v", err)
	}
}

func TestLogin_NonAdminRejectedEvenWithValidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(t, "padre@vaqmas.com", "secreta123", false, true)
	svc := NewAuthService(repo)

	resp, err := svc.Login("padre@vaqmas.com", "secreta123")
	if !errors.Is(err, ErrNoEsAdministrador) {
		t.Fatalf("expected ErrNoEsAdministrador, got %v", err)
	}
	if resp != nil {
		t.Fatal("non-admin login must not produce a token")
	}
}

func TestLogin_InactiveAccountRejected(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(t, "ex@vaqmas.com", "secreta123", true, false)
	svc := NewAuthService(repo)

	_, err := svc.Login("ex@vaqmas.com", "secreta123")
	if !errors.Is(err, ErrCuentaInactiva) {
		t.Fatalf("expected ErrCuentaInactiva, got %v", err)
	}
}

func TestLogin_AdminGetsTokenAndValidateRoundTrips(t *testing.T) {
	repo := newFakeUserRepo()
	admin := repo.add(t, "admin@vaqmas.com", "secreta123", true, true)
	svc := NewAuthService(repo)

	resp, err := svc.Login("admin@vaqmas.com", "secreta123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.User.ID != admin.ID || !resp.User.IsAdmin {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}

	validated, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if validated.User.ID != admin.ID {
		t.Fatalf("token resolved to wrong user: %+v", validated.User)
	}
}

func TestValidateToken_RevokedAdminLosesAccess(t *testing.T) {
	repo := newFakeUserRepo()
	admin := repo.add(t, "admin@vaqmas.com", "secreta123", true, true)
	svc := NewAuthService(repo)

	resp, err := svc.Login("admin@vaqmas.com", "secreta123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// The admin flag is re-checked against the DB on validation.
	admin.IsAdmin = false
	if _, err := svc.ValidateToken(resp.Token); !errors.Is(err, ErrNoEsAdministrador) {
		t.Fatalf("expected ErrNoEsAdministrador after revocation, got %v", err)
	}
}
