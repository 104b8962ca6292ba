package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DurrrA/sigril-sub001/model"
	authrepo "github.com/DurrrA/sigril-sub001/repository/auth"
	"github.com/DurrrA/sigril-sub001/util/hash"
	jwtutil "github.com/DurrrA/sigril-sub001/util/jwt"
)

type ErrCode string

const (
	ErrEmailTaken    ErrCode = "EMAIL_TAKEN"
	ErrUsernameTaken ErrCode = "USERNAME_TAKEN"
	ErrInvalidCreds  ErrCode = "INVALID_CREDENTIALS"
	ErrBadInput      ErrCode = "BAD_INPUT"
	ErrNotFound      ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

const tokenTTLHours = 24

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

type service struct {
	ur     authrepo.Repo
	secret string
}

func New(ur authrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" || len(req.Password) < 6 {
		return nil, "", makeErr(ErrBadInput)
	}

	if existing, err := s.ur.ByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", makeErr(ErrEmailTaken)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Username:     username,
		Role:         model.RoleUser,
		PasswordHash: hashed,
	}
	if err := s.ur.Create(ctx, u); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, "", derr
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, u.Role, tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)

		if strings.Contains(cn, "users_email") || strings.Contains(msg, "email") {
			return makeErr(ErrEmailTaken)
		}
		if strings.Contains(cn, "users_username") || strings.Contains(msg, "username") {
			return makeErr(ErrUsernameTaken)
		}
		return makeErr(ErrBadInput)
	}
	return nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", makeErr(ErrBadInput)
	}
	u, err := s.ur.ByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	token, err := jwtutil.Issue(s.secret, u.ID, u.Role, tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Profile(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.ur.ByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrNotFound)
	}
	return u, err
}
