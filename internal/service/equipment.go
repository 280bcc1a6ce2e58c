package service

import (
	"context"
	"fmt"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	activity      ActivityRecorder
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, activity ActivityRecorder) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		activity:      activity,
	}
}

func (s *equipmentService) Add(ctx context.Context, equipment *domain.GymEquipment) (*domain.GymEquipment, error) {
	if equipment.Name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if equipment.State == "" {
		equipment.State = domain.EquipmentStateNew
	}
	if equipment.Condition == "" {
		equipment.Condition = domain.EquipmentConditionNonFaulty
	}

	if err := s.equipmentRepo.Create(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

func (s *equipmentService) Update(ctx context.Context, equipment *domain.GymEquipment) (*domain.GymEquipment, error) {
	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

func (s *equipmentService) List(ctx context.Context) ([]domain.GymEquipment, error) {
	return s.equipmentRepo.List(ctx)
}

func (s *equipmentService) Delete(ctx context.Context, id string) error {
	return s.equipmentRepo.Delete(ctx, id)
}

func (s *equipmentService) LogMaintenance(ctx context.Context, staff *domain.StaffMember, log *domain.MaintenanceLog) (*domain.MaintenanceLog, error) {
	if log.EquipmentName == "" {
		return nil, domain.NewValidationError("equipment_name", "is required")
	}
	if log.Description == "" {
		return nil, domain.NewValidationError("description", "is required")
	}

	if log.DateTime == "" {
		log.DateTime = time.Now().Format(time.RFC3339)
	}
	log.StaffName = staff.FullName
	log.StaffEmail = staff.Email

	if err := s.equipmentRepo.CreateMaintenanceLog(ctx, log); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, staff, "Maintenance logged",
		fmt.Sprintf("%s: %s", log.EquipmentName, log.Description),
		domain.ActivityCategoryAdmin)
	return log, nil
}

func (s *equipmentService) ListMaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error) {
	return s.equipmentRepo.ListMaintenanceLogs(ctx)
}
