package service

import (
	"context"
	"time"

	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

const recentFuelLogCount = 5

type DashboardService struct {
	repo *repository.DashboardRepository
}

func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	now := nowUTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	tomorrow := dayStart.AddDate(0, 0, 1)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var stats model.DashboardStats
	var err error
	if stats.TotalVehicles, err = s.repo.CountVehicles(ctx); err != nil {
		return nil, fromStore(err)
	}
	if stats.TotalGenerators, err = s.repo.CountGenerators(ctx); err != nil {
		return nil, fromStore(err)
	}
	if stats.TodayFuelLogs, err = s.repo.CountFuelLogsBetween(ctx, dayStart, tomorrow); err != nil {
		return nil, fromStore(err)
	}
	if stats.ThisMonthFuelLogs, err = s.repo.CountFuelLogsBetween(ctx, monthStart, nextMonth); err != nil {
		return nil, fromStore(err)
	}
	if stats.ActiveStations, err = s.repo.CountStations(ctx); err != nil {
		return nil, fromStore(err)
	}
	if stats.TotalGasBills, err = s.repo.CountGasBills(ctx); err != nil {
		return nil, fromStore(err)
	}
	if stats.GasInventory, stats.SolarInventory, err = s.repo.CurrentInventory(ctx); err != nil {
		return nil, fromStore(err)
	}
	return &stats, nil
}

func (s *DashboardService) RecentFuelLogs(ctx context.Context) ([]model.RecentFuelLog, error) {
	logs, err := s.repo.RecentFuelLogs(ctx, recentFuelLogCount)
	if err != nil {
		return nil, fromStore(err)
	}
	return logs, nil
}
