package service

import (
	"context"

	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

type ConstantService struct {
	repo     *repository.ConstantRepository
	resolver *constants.Resolver
}

func NewConstantService(repo *repository.ConstantRepository, resolver *constants.Resolver) *ConstantService {
	return &ConstantService{repo: repo, resolver: resolver}
}

type ConstantListQuery struct {
	Type     *string
	Search   *string
	Page     int
	PageSize int
}

type ConstantCreateInput struct {
	Name    *string
	Type    *string
	NameEng *string
}

type ConstantUpdateInput = ConstantCreateInput

func (s *ConstantService) List(ctx context.Context, q ConstantListQuery) (*repository.Page[model.Constant], error) {
	crit := repository.Criteria{}
	if q.Type != nil && *q.Type != "" {
		crit = crit.Equal("cnst_type", *q.Type)
	}
	if q.Search != nil && *q.Search != "" {
		crit = crit.Match(*q.Search, "cnst_name", "cnst_eng")
	}

	page, err := s.repo.List(ctx, crit, q.Page, q.PageSize)
	if err != nil {
		return nil, fromStore(err)
	}
	return page, nil
}

func (s *ConstantService) Get(ctx context.Context, id int64) (*model.Constant, error) {
	constant, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return constant, nil
}

func (s *ConstantService) Create(ctx context.Context, p model.Principal, in ConstantCreateInput) (*model.Constant, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if in.Name == nil || *in.Name == "" {
		return nil, invalid("cnst_name is required")
	}
	if len(*in.Name) > 80 {
		return nil, invalid("cnst_name cannot exceed 80 characters")
	}

	constant := &model.Constant{
		Name:    *in.Name,
		Type:    in.Type,
		NameEng: in.NameEng,
	}
	if err := s.repo.Create(ctx, constant); err != nil {
		return nil, fromStore(err)
	}
	s.resolver.Invalidate()
	return constant, nil
}

func (s *ConstantService) Update(ctx context.Context, p model.Principal, id int64, in ConstantUpdateInput) (*model.Constant, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fromStore(err)
	}
	if in.Name != nil && *in.Name == "" {
		return nil, invalid("cnst_name cannot be empty")
	}
	if in.Name != nil && len(*in.Name) > 80 {
		return nil, invalid("cnst_name cannot exceed 80 characters")
	}

	fields := map[string]interface{}{}
	setIfPresent(fields, "cnst_name", in.Name)
	setIfPresent(fields, "cnst_type", in.Type)
	setIfPresent(fields, "cnst_eng", in.NameEng)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fromStore(err)
	}
	s.resolver.Invalidate()
	return s.Get(ctx, id)
}

func (s *ConstantService) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := guardWrite(p); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fromStore(err)
	}
	s.resolver.Invalidate()
	return nil
}

func (s *ConstantService) ByType(ctx context.Context, typeTag string) ([]model.Constant, error) {
	if typeTag == "" {
		return nil, invalid("type is required")
	}
	rows, err := s.repo.ByType(ctx, typeTag)
	if err != nil {
		return nil, fromStore(err)
	}
	return rows, nil
}

func (s *ConstantService) Options(ctx context.Context, typeTag string) ([]model.ConstantOption, error) {
	if typeTag == "" {
		return nil, invalid("type is required")
	}
	options, err := s.repo.Options(ctx, typeTag)
	if err != nil {
		return nil, fromStore(err)
	}
	return options, nil
}

func (s *ConstantService) Types(ctx context.Context) ([]string, error) {
	types, err := s.repo.Types(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return types, nil
}
