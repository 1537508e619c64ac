package service

import (
	"context"

	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

type StationService struct {
	repo *repository.StationRepository
}

func NewStationService(repo *repository.StationRepository) *StationService {
	return &StationService{repo: repo}
}

type StationListQuery struct {
	ParentOID *int64
	Search    string
	Page      int
	PageSize  int
}

type StationCreateInput struct {
	StationName   string
	StationEname  *string
	StationWeight *int
	ParentOID     *int64
}

type StationUpdateInput struct {
	StationName   *string
	StationEname  *string
	StationWeight *int
	ParentOID     *int64
}

func (s *StationService) List(ctx context.Context, q StationListQuery) (*repository.Page[model.Station], error) {
	crit := repository.Criteria{}
	if q.Search != "" {
		crit = crit.Match(q.Search, "station_name", "station_ename")
	}
	if q.ParentOID != nil {
		crit = crit.Equal("parent_oid", *q.ParentOID)
	}

	page, err := s.repo.List(ctx, crit, q.Page, q.PageSize)
	if err != nil {
		return nil, fromStore(err)
	}
	return page, nil
}

func (s *StationService) Get(ctx context.Context, id int64) (*model.Station, error) {
	station, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return station, nil
}

func (s *StationService) Create(ctx context.Context, p model.Principal, in StationCreateInput) (*model.Station, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if in.StationName == "" {
		return nil, invalid("station_name is required")
	}
	if len(in.StationName) > 200 {
		return nil, invalid("station_name exceeds 200 characters")
	}

	station := &model.Station{
		StationName:   in.StationName,
		StationEname:  in.StationEname,
		StationWeight: in.StationWeight,
		ParentOID:     in.ParentOID,
	}
	if err := s.repo.Create(ctx, station); err != nil {
		return nil, fromStore(err)
	}
	return station, nil
}

func (s *StationService) Update(ctx context.Context, p model.Principal, id int64, in StationUpdateInput) (*model.Station, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fromStore(err)
	}

	fields := map[string]interface{}{}
	if in.StationName != nil {
		if *in.StationName == "" {
			return nil, invalid("station_name cannot be empty")
		}
		fields["station_name"] = *in.StationName
	}
	setIfPresent(fields, "station_ename", in.StationEname)
	setIfPresent(fields, "station_weight", in.StationWeight)
	setIfPresent(fields, "parent_oid", in.ParentOID)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fromStore(err)
	}
	return s.Get(ctx, id)
}

func (s *StationService) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := guardWrite(p); err != nil {
		return err
	}
	return fromStore(s.repo.Delete(ctx, id))
}

func (s *StationService) Options(ctx context.Context) ([]model.StationOption, error) {
	options, err := s.repo.Options(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return options, nil
}
