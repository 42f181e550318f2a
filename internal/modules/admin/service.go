package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"museumbackend/internal/assets"
	"museumbackend/internal/domain"
	"museumbackend/internal/pkg/apperr"
)

const avatarFolder = "museum/avatars"

type Service struct {
	users     UserRepository
	uploads   *assets.Coordinator
	txTimeout time.Duration
}

func NewService(users UserRepository, uploads *assets.Coordinator, txTimeout time.Duration) *Service {
	return &Service{users: users, uploads: uploads, txTimeout: txTimeout}
}

// CreateAdmin provisions a back-office account. The optional avatar is
// uploaded before the database write and compensated if the write fails.
func (s *Service) CreateAdmin(ctx context.Context, req CreateAdminRequest, avatar []byte) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "checking email failed", err)
	}
	if exists {
		return nil, apperr.New(apperr.KindConflict, "an account with this email already exists")
	}

	led := assets.NewLedger()

	var avatarURL *string
	if len(avatar) > 0 {
		url, err := s.uploads.Upload(ctx, led, avatar, avatarFolder, assets.Key("admin", req.Prenom, req.Nom))
		if err != nil {
			return nil, err
		}
		avatarURL = &url
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.uploads.Rollback(ctx, led)
		return nil, apperr.Wrap(apperr.KindInternal, "hashing password failed", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Nom:          req.Nom,
		Prenom:       req.Prenom,
		Telephone:    req.Telephone,
		Avatar:       avatarURL,
		Role:         domain.RoleAdmin,
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	if err := s.users.CreateAdmin(txCtx, user); err != nil {
		s.uploads.Rollback(ctx, led)
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.KindConflict, "an account with this email already exists")
		}
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "creating admin failed", err)
	}

	user.PasswordHash = ""
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
