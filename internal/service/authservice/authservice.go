package authservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/pkg/auth"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

const (
	codeTTL    = 10 * time.Minute
	sessionTTL = 5 * time.Minute
	tokenTTL   = 24 * time.Hour

	sweepInterval = time.Minute
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid or expired verification code")
	ErrUserExists         = errors.New("user with this email or phone already exists")
	ErrSessionNotReady    = errors.New("telegram session is not confirmed yet")
	ErrSessionNotFound    = errors.New("telegram session not found or expired")
	ErrUnknownTelegramID  = errors.New("no account is linked to this telegram id")
)

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	LinkTelegram(ctx context.Context, userID string, telegramID int64) error
	List(ctx context.Context, page domain.Page) ([]domain.User, int, error)
}

type VerificationRepo interface {
	Create(ctx context.Context, v *domain.Verification) (*domain.Verification, error)
	Consume(ctx context.Context, target, code string, now time.Time) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.TelegramSession) (*domain.TelegramSession, error)
	FindValidByToken(ctx context.Context, token string, now time.Time) (*domain.TelegramSession, error)
	Link(ctx context.Context, id string, telegramID int64, userID string) error
	Consume(ctx context.Context, token string, now time.Time) (*string, bool, error)
	DeleteExpired(ctx context.Context, now time.Time) error
}

// CodeSender delivers a one-time code to an email address or phone number.
// Actual SMS/email providers are external collaborators.
type CodeSender interface {
	Send(ctx context.Context, target, code string) error
}

// LogSender stands in when no delivery provider is configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, target, code string) error {
	zap.L().Info("verification code issued", zap.String("target", target), zap.String("code", code))
	return nil
}

type Service struct {
	userRepo         UserRepo
	verificationRepo VerificationRepo
	sessionRepo      SessionRepo
	sender           CodeSender
	hashService      auth.HashServiceInterface
	jwtService       auth.JWTServiceInterface
	now              func() time.Time
}

func New(userRepo UserRepo, verificationRepo VerificationRepo, sessionRepo SessionRepo, sender CodeSender, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		sessionRepo:      sessionRepo,
		sender:           sender,
		hashService:      hashService,
		jwtService:       jwtService,
		now:              time.Now,
	}
}

func isEmail(target string) bool {
	return strings.Contains(target, "@")
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SendCode issues a fresh verification code for an email or phone target.
func (s *Service) SendCode(ctx context.Context, target string) error {
	var existing *domain.User
	var err error
	if isEmail(target) {
		existing, err = s.userRepo.FindByEmail(ctx, target)
	} else {
		existing, err = s.userRepo.FindByPhone(ctx, target)
	}
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	_, err = s.verificationRepo.Create(ctx, &domain.Verification{
		Target:    target,
		Code:      code,
		ExpiresAt: s.now().Add(codeTTL),
	})
	if err != nil {
		return err
	}

	if err := s.sender.Send(ctx, target, code); err != nil {
		zap.L().Error("can't send verification code", zap.Error(err))
		return err
	}
	return nil
}

// Register consumes a verification code and creates the account. The code
// matches at most once.
func (s *Service) Register(ctx context.Context, target, code, name, password string) (*domain.User, string, error) {
	ok, err := s.verificationRepo.Consume(ctx, target, code, s.now())
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrInvalidCode
	}

	hashed, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		PasswordHash: hashed,
	}
	if isEmail(target) {
		user.Email = &target
	} else {
		user.Phone = &target
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, "", err
	}

	token, err := s.generateToken(created.ID)
	if err != nil {
		return nil, "", err
	}
	zap.L().Info("user registered", zap.String("userID", created.ID))
	return created, token, nil
}

// Login authenticates by email or phone plus password.
func (s *Service) Login(ctx context.Context, target, password string) (*domain.User, string, error) {
	var user *domain.User
	var err error
	if isEmail(target) {
		user, err = s.userRepo.FindByEmail(ctx, target)
	} else {
		user, err = s.userRepo.FindByPhone(ctx, target)
	}
	if err != nil || user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	zap.L().Info("user authenticated", zap.String("userID", user.ID))
	return user, token, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Users lists registered accounts for the admin panel, newest first.
func (s *Service) Users(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	return s.userRepo.List(ctx, page.Normalize())
}

func (s *Service) generateToken(userID string) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, s.now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// CreateTelegramSession opens the bot-confirmation handshake and returns
// the token the client embeds into the bot deep-link.
func (s *Service) CreateTelegramSession(ctx context.Context) (*domain.TelegramSession, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return s.sessionRepo.Create(ctx, &domain.TelegramSession{
		Token:     hex.EncodeToString(buf),
		ExpiresAt: s.now().Add(sessionTTL),
	})
}

// ConfirmTelegramSession is called from the bot side when the user presses
// confirm: it binds the session to the telegram id and the linked account.
func (s *Service) ConfirmTelegramSession(ctx context.Context, token string, telegramID int64) error {
	session, err := s.sessionRepo.FindValidByToken(ctx, token, s.now())
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	user, err := s.userRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUnknownTelegramID
	}

	return s.sessionRepo.Link(ctx, session.ID, telegramID, user.ID)
}

// ExchangeTelegramSession is polled by the login client; once the bot has
// confirmed, it consumes the session and returns a JWT. Consumption is a
// single conditional update, so concurrent polls of the same token mint at
// most one token.
func (s *Service) ExchangeTelegramSession(ctx context.Context, token string) (string, error) {
	userID, ok, err := s.sessionRepo.Consume(ctx, token, s.now())
	if err != nil {
		return "", err
	}
	if ok {
		return s.generateToken(*userID)
	}

	// nothing consumed: tell a still-pending session apart from a gone one
	session, err := s.sessionRepo.FindValidByToken(ctx, token, s.now())
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrSessionNotFound
	}
	return "", ErrSessionNotReady
}

// LinkTelegram attaches a telegram id to an existing account.
func (s *Service) LinkTelegram(ctx context.Context, userID string, telegramID int64) error {
	return s.userRepo.LinkTelegram(ctx, userID, telegramID)
}

// StartSweeper purges expired verification codes and telegram sessions on
// a fixed interval until ctx is canceled.
func (s *Service) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				zap.L().Info("context canceled, stopping auth sweeper")
				return
			case <-ticker.C:
				now := s.now()
				var g errgroup.Group
				g.Go(func() error { return s.verificationRepo.DeleteExpired(ctx, now) })
				g.Go(func() error { return s.sessionRepo.DeleteExpired(ctx, now) })
				if err := g.Wait(); err != nil {
					zap.L().Error("auth sweep failed", zap.Error(err))
				}
			}
		}
	}()
}
