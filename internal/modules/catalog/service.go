package catalog

import (
	"context"
	"errors"

	"hotelier/internal/domain"
	"hotelier/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("catalog entry not found")
	ErrInvalidRoomStatus = errors.New("invalid room status")
)

type Service struct {
	roomRepo       RoomRepo
	roomTypeRepo   RoomTypeRepo
	propertyRepo   PropertyRepo
	serviceRepo    ServiceRepo
	defaultPerPage int
}

func NewService(
	roomRepo RoomRepo,
	roomTypeRepo RoomTypeRepo,
	propertyRepo PropertyRepo,
	serviceRepo ServiceRepo,
	defaultPerPage int,
) *Service {
	if defaultPerPage <= 0 {
		defaultPerPage = 15
	}
	return &Service{roomRepo, roomTypeRepo, propertyRepo, serviceRepo, defaultPerPage}
}

/* ---------- ROOMS ---------- */

func (s *Service) ListRooms(ctx context.Context, q RoomListQuery) ([]domain.Room, int64, error) {
	if q.PerPage == 0 {
		q.PerPage = s.defaultPerPage
	}
	f := repository.RoomFilter{
		Name:       q.Name,
		RoomTypeID: q.RoomTypeID,
		Page:       q.Page,
		PerPage:    q.PerPage,
	}
	if q.Status != 0 {
		st := domain.RoomStatus(q.Status)
		f.Status = &st
	}
	return s.roomRepo.Search(ctx, f)
}

func (s *Service) GetRoom(ctx context.Context, id uint) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return room, nil
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	status := domain.RoomStatus(req.Status)
	if req.Status == 0 {
		status = domain.RoomActive
	}
	if !status.Valid() {
		return nil, ErrInvalidRoomStatus
	}
	if _, err := s.roomTypeRepo.GetByID(ctx, req.RoomTypeID); err != nil {
		return nil, notFound(err)
	}

	room := &domain.Room{
		Name:          req.Name,
		RoomTypeID:    req.RoomTypeID,
		ThumbnailPath: req.ThumbnailPath,
		Description:   req.Description,
		Status:        status,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return s.GetRoom(ctx, room.ID)
}

func (s *Service) UpdateRoom(ctx context.Context, id uint, req UpdateRoomRequest) (*domain.Room, error) {
	status := domain.RoomStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidRoomStatus
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if _, err := s.roomTypeRepo.GetByID(ctx, req.RoomTypeID); err != nil {
		return nil, notFound(err)
	}

	room.Name = req.Name
	room.RoomTypeID = req.RoomTypeID
	room.ThumbnailPath = req.ThumbnailPath
	room.Description = req.Description
	room.Status = status
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return s.GetRoom(ctx, room.ID)
}

func (s *Service) DeleteRoom(ctx context.Context, id uint) error {
	if _, err := s.roomRepo.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	return s.roomRepo.SoftDelete(ctx, id)
}

func (s *Service) RestoreRoom(ctx context.Context, id uint) error {
	return s.roomRepo.Restore(ctx, id)
}

/* ---------- ROOM TYPES ---------- */

func (s *Service) ListRoomTypes(ctx context.Context, q NamedListQuery) ([]domain.RoomType, int64, error) {
	if q.PerPage == 0 {
		q.PerPage = s.defaultPerPage
	}
	return s.roomTypeRepo.List(ctx, q.Name, q.Page, q.PerPage)
}

func (s *Service) GetRoomType(ctx context.Context, id uint) (*domain.RoomType, error) {
	rt, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return rt, nil
}

func (s *Service) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*domain.RoomType, error) {
	props, err := s.resolveProperties(ctx, req.Properties)
	if err != nil {
		return nil, err
	}

	rt := &domain.RoomType{
		Name:       req.Name,
		Price:      domain.Money(req.Price),
		Properties: props,
	}
	if err := s.roomTypeRepo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return s.GetRoomType(ctx, rt.ID)
}

func (s *Service) UpdateRoomType(ctx context.Context, id uint, req UpdateRoomTypeRequest) (*domain.RoomType, error) {
	rt, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	props, err := s.resolveProperties(ctx, req.Properties)
	if err != nil {
		return nil, err
	}

	rt.Name = req.Name
	rt.Price = domain.Money(req.Price)
	rt.Properties = props
	if err := s.roomTypeRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return s.GetRoomType(ctx, rt.ID)
}

func (s *Service) DeleteRoomType(ctx context.Context, id uint) error {
	if _, err := s.roomTypeRepo.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	return s.roomTypeRepo.SoftDelete(ctx, id)
}

func (s *Service) resolveProperties(ctx context.Context, reqs []PropertyValueRequest) ([]domain.RoomProperty, error) {
	props := make([]domain.RoomProperty, 0, len(reqs))
	for _, pv := range reqs {
		if _, err := s.propertyRepo.GetByID(ctx, pv.PropertyID); err != nil {
			return nil, notFound(err)
		}
		props = append(props, domain.RoomProperty{
			PropertyID: pv.PropertyID,
			Value:      pv.Value,
		})
	}
	return props, nil
}

/* ---------- PROPERTIES ---------- */

func (s *Service) ListProperties(ctx context.Context, name string) ([]domain.Property, error) {
	return s.propertyRepo.List(ctx, name)
}

func (s *Service) CreateProperty(ctx context.Context, req PropertyRequest) (*domain.Property, error) {
	p := &domain.Property{Name: req.Name}
	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateProperty(ctx context.Context, id uint, req PropertyRequest) (*domain.Property, error) {
	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	p.Name = req.Name
	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteProperty(ctx context.Context, id uint) error {
	if _, err := s.propertyRepo.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	return s.propertyRepo.Delete(ctx, id)
}

/* ---------- SERVICES ---------- */

func (s *Service) ListServices(ctx context.Context, q NamedListQuery) ([]domain.HotelService, int64, error) {
	if q.PerPage == 0 {
		q.PerPage = s.defaultPerPage
	}
	return s.serviceRepo.List(ctx, q.Name, q.Page, q.PerPage)
}

func (s *Service) GetService(ctx context.Context, id uint) (*domain.HotelService, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return svc, nil
}

func (s *Service) CreateService(ctx context.Context, req ServiceRequest) (*domain.HotelService, error) {
	svc := &domain.HotelService{Name: req.Name, Price: domain.Money(req.Price)}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id uint, req ServiceRequest) (*domain.HotelService, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	svc.Name = req.Name
	svc.Price = domain.Money(req.Price)
	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id uint) error {
	if _, err := s.serviceRepo.GetByID(ctx, id); err != nil {
		return notFound(err)
	}
	return s.serviceRepo.SoftDelete(ctx, id)
}

func (s *Service) RestoreService(ctx context.Context, id uint) error {
	return s.serviceRepo.Restore(ctx, id)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
