package service

import (
	"time"

	"github.com/DesVallees/VAQ-sub000/internal/model"
	"github.com/DesVallees/VAQ-sub000/internal/repository"
)

type DashboardStats struct {
	ProductCounts        map[model.ProductType]int64       `json:"product_counts"`
	AppointmentCounts    map[model.AppointmentStatus]int64 `json:"appointment_counts"`
	UpcomingAppointments int64                             `json:"upcoming_appointments"`
}

type DashboardService interface {
	GetStats() (*DashboardStats, error)
}

type dashboardService struct {
	productRepo     repository.ProductRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDashboardService(pRepo repository.ProductRepository, aRepo repository.AppointmentRepository) DashboardService {
	return &dashboardService{productRepo: pRepo, appointmentRepo: aRepo}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	productCounts, err := s.productRepo.CountByType()
	if err != nil {
		return nil, err
	}

	appointmentCounts, err := s.appointmentRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	upcoming, err := s.appointmentRepo.CountUpcoming(time.Now())
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ProductCounts:        productCounts,
		AppointmentCounts:    appointmentCounts,
		UpcomingAppointments: upcoming,
	}, nil
}
