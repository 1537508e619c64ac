package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

type UserListQuery struct {
	Active   *bool
	ReadOnly *bool
	Search   string
	Page     int
	PageSize int
}

type UserCreateInput struct {
	Username string
	Password string
	FullName string
	SSN      *int64
	Active   *bool
	ReadOnly *bool
}

type UserUpdateInput struct {
	Username *string
	Password *string
	FullName *string
	SSN      *int64
	Active   *bool
	ReadOnly *bool
}

func (s *UserService) List(ctx context.Context, q UserListQuery) (*repository.Page[model.User], error) {
	crit := repository.Criteria{}
	if q.Search != "" {
		crit = crit.Match(q.Search, "user_name", "user_full_name")
	}
	if q.Active != nil {
		crit = crit.Equal("user_active", *q.Active)
	}
	if q.ReadOnly != nil {
		crit = crit.Equal("read_only", *q.ReadOnly)
	}

	page, err := s.repo.List(ctx, crit, q.Page, q.PageSize)
	if err != nil {
		return nil, fromStore(err)
	}
	return page, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, p model.Principal, in UserCreateInput) (*model.User, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if len(in.Username) < 3 {
		return nil, invalid("username must be at least 3 characters")
	}
	if len(in.Password) < 3 {
		return nil, invalid("password must be at least 3 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fromStore(err)
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	readOnly := false
	if in.ReadOnly != nil {
		readOnly = *in.ReadOnly
	}

	user := &model.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		SSN:          in.SSN,
		Active:       active,
		ReadOnly:     readOnly,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fromStore(err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, p model.Principal, id int64, in UserUpdateInput) (*model.User, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fromStore(err)
	}

	fields := map[string]interface{}{}
	if in.Username != nil {
		if len(*in.Username) < 3 {
			return nil, invalid("username must be at least 3 characters")
		}
		fields["user_name"] = *in.Username
	}
	if in.Password != nil {
		if len(*in.Password) < 3 {
			return nil, invalid("password must be at least 3 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fromStore(err)
		}
		fields["user_password"] = string(hash)
	}
	setIfPresent(fields, "user_full_name", in.FullName)
	setIfPresent(fields, "user_ssn", in.SSN)
	setIfPresent(fields, "user_active", in.Active)
	setIfPresent(fields, "read_only", in.ReadOnly)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fromStore(err)
	}
	return s.Get(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := guardWrite(p); err != nil {
		return err
	}
	return fromStore(s.repo.Delete(ctx, id))
}
