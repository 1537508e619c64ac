package service

import (
	"context"

	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

type GeneratorService struct {
	repo     *repository.GeneratorRepository
	resolver *constants.Resolver
	lookups  *repository.LookupRepository
}

func NewGeneratorService(repo *repository.GeneratorRepository, resolver *constants.Resolver, lookups *repository.LookupRepository) *GeneratorService {
	return &GeneratorService{repo: repo, resolver: resolver, lookups: lookups}
}

type GeneratorListQuery struct {
	FuelTypeOID *int64
	AssignedTo  *int64
	TypeOID     *int64
	Search      string
	Page        int
	PageSize    int
}

type GeneratorCreateInput struct {
	Name           string
	AssignedTo     *int64
	FuelTypeOID    int64
	TypeOID        *int64
	EngineCapacity *float64
	Note           *string
}

type GeneratorUpdateInput struct {
	Name           *string
	AssignedTo     *int64
	FuelTypeOID    *int64
	TypeOID        *int64
	EngineCapacity *float64
	Note           *string
}

func (s *GeneratorService) List(ctx context.Context, q GeneratorListQuery) (*repository.Page[model.Generator], error) {
	crit := repository.Criteria{}
	if q.FuelTypeOID != nil {
		crit = crit.Equal("fuel_type_oid", *q.FuelTypeOID)
	}
	if q.AssignedTo != nil {
		crit = crit.Equal("assigned_to", *q.AssignedTo)
	}
	if q.TypeOID != nil {
		crit = crit.Equal("type_oid", *q.TypeOID)
	}
	if q.Search != "" {
		crit = crit.Match(q.Search, "name")
	}

	page, err := s.repo.List(ctx, crit, q.Page, q.PageSize)
	if err != nil {
		return nil, fromStore(err)
	}
	if err := s.enrich(ctx, page.Rows); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *GeneratorService) Get(ctx context.Context, id int64) (*model.Generator, error) {
	generator, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	rows := []model.Generator{*generator}
	if err := s.enrich(ctx, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

func (s *GeneratorService) Create(ctx context.Context, p model.Principal, in GeneratorCreateInput) (*model.Generator, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, invalid("name is required")
	}
	if in.FuelTypeOID == 0 {
		return nil, invalid("fuel_type_oid is required")
	}

	now := nowUTC()
	entryUser := p.ID
	generator := &model.Generator{
		Name:           in.Name,
		AssignedTo:     in.AssignedTo,
		FuelTypeOID:    in.FuelTypeOID,
		TypeOID:        in.TypeOID,
		EngineCapacity: in.EngineCapacity,
		Note:           in.Note,
		EntryUser:      &entryUser,
		EntryDate:      &now,
	}
	if err := s.repo.Create(ctx, generator); err != nil {
		return nil, fromStore(err)
	}
	return generator, nil
}

func (s *GeneratorService) Update(ctx context.Context, p model.Principal, id int64, in GeneratorUpdateInput) (*model.Generator, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fromStore(err)
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, invalid("name cannot be empty")
		}
		fields["name"] = *in.Name
	}
	setIfPresent(fields, "assigned_to", in.AssignedTo)
	setIfPresent(fields, "fuel_type_oid", in.FuelTypeOID)
	setIfPresent(fields, "type_oid", in.TypeOID)
	setIfPresent(fields, "engine_capacity", in.EngineCapacity)
	setIfPresent(fields, "note", in.Note)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fromStore(err)
	}
	return s.Get(ctx, id)
}

func (s *GeneratorService) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := guardWrite(p); err != nil {
		return err
	}
	return fromStore(s.repo.Delete(ctx, id))
}

func (s *GeneratorService) FuelLogs(ctx context.Context, id int64, limit int) ([]model.FuelLog, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fromStore(err)
	}
	logs, err := s.repo.FuelLogs(ctx, id, limit)
	if err != nil {
		return nil, fromStore(err)
	}
	return logs, nil
}

func (s *GeneratorService) Options(ctx context.Context, fuelTypeOID *int64) ([]model.Generator, error) {
	generators, err := s.repo.Options(ctx, fuelTypeOID)
	if err != nil {
		return nil, fromStore(err)
	}
	return generators, nil
}

func (s *GeneratorService) enrich(ctx context.Context, generators []model.Generator) error {
	if len(generators) == 0 {
		return nil
	}

	fuelIDs := make([]int64, 0, len(generators))
	typeIDs := make([]int64, 0, len(generators))
	vehicleIDs := make([]int64, 0, len(generators))
	for i := range generators {
		g := &generators[i]
		if g.FuelTypeOID != 0 {
			fuelIDs = append(fuelIDs, g.FuelTypeOID)
		}
		if g.TypeOID != nil && *g.TypeOID != 0 {
			typeIDs = append(typeIDs, *g.TypeOID)
		}
		if g.AssignedTo != nil && *g.AssignedTo != 0 {
			vehicleIDs = append(vehicleIDs, *g.AssignedTo)
		}
	}

	fuelNames, err := s.resolver.Labels(ctx, constants.TagFuelType, fuelIDs)
	if err != nil {
		return fromStore(err)
	}
	typeNames, err := s.resolver.Labels(ctx, constants.TagGeneratorType, typeIDs)
	if err != nil {
		return fromStore(err)
	}
	vehicleNums, err := s.lookups.VehicleNumbers(ctx, vehicleIDs)
	if err != nil {
		return fromStore(err)
	}

	for i := range generators {
		g := &generators[i]
		if name, ok := fuelNames[g.FuelTypeOID]; ok {
			g.FuelTypeName = &name
		}
		if g.TypeOID != nil {
			if name, ok := typeNames[*g.TypeOID]; ok {
				g.TypeName = &name
			}
		}
		if g.AssignedTo != nil {
			if num, ok := vehicleNums[*g.AssignedTo]; ok {
				g.HostVehicleNum = &num
			}
		}
	}
	return nil
}
