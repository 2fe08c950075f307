// Package service contains the business logic for the TripMate API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls plus the side effects a trip mutation carries (reminder scheduling,
// cover image cleanup). No persistence code lives here — services depend on
// repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bhanukaonline/tripmate/internal/domain"
	"github.com/bhanukaonline/tripmate/internal/reminder"
	"github.com/bhanukaonline/tripmate/internal/repo"
	"github.com/bhanukaonline/tripmate/internal/timeline"
)

// Scheduler maintains the reminder schedule for trips. Creating or updating
// a trip replaces its reminders; deleting a trip cancels them.
type Scheduler interface {
	Schedule(ctx context.Context, trip domain.Trip) error
	Cancel(ctx context.Context, tripID uuid.UUID) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]reminder.Reminder, error)
}

// ImageStore persists cover image bytes under generated filenames.
type ImageStore interface {
	Save(data []byte) (string, error)
	Remove(name string) error
}

// CalendarRenderer turns a trip into a calendar document (iCalendar bytes).
type CalendarRenderer interface {
	Render(trip domain.Trip) ([]byte, error)
}

// TripService implements business logic for trip operations.
type TripService struct {
	repo      repo.TripRepo
	scheduler Scheduler
	images    ImageStore
	calendar  CalendarRenderer
}

// NewTripService constructs a TripService with its collaborators.
func NewTripService(r repo.TripRepo, sched Scheduler, images ImageStore, cal CalendarRenderer) *TripService {
	return &TripService{repo: r, scheduler: sched, images: images, calendar: cal}
}

// Create validates and persists a new trip, then schedules its reminders.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	if err := s.scheduler.Schedule(ctx, created); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: schedule reminders: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by id.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and replaces an existing trip, then reschedules its
// reminders against the new dates.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if err := s.scheduler.Schedule(ctx, updated); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: schedule reminders: %w", err)
	}
	return updated, nil
}

// Delete removes a trip, cancels its reminders, and releases its cover
// image file. Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if err := s.scheduler.Cancel(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: cancel reminders: %w", err)
	}
	if trip.ImageRef != "" {
		if err := s.images.Remove(trip.ImageRef); err != nil {
			return fmt.Errorf("service.TripService.Delete: remove image: %w", err)
		}
	}
	return nil
}

// Timeline builds the day-bucketed projection for one trip.
func (s *TripService) Timeline(ctx context.Context, id uuid.UUID) (timeline.Timeline, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return timeline.Timeline{}, fmt.Errorf("service.TripService.Timeline: %w", err)
	}
	return timeline.Build(trip), nil
}

// Reminders returns the scheduled reminders for one trip.
// Always returns a non-nil slice.
func (s *TripService) Reminders(ctx context.Context, id uuid.UUID) ([]reminder.Reminder, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("service.TripService.Reminders: %w", err)
	}
	rs, err := s.scheduler.ListByTrip(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Reminders: %w", err)
	}
	if rs == nil {
		return []reminder.Reminder{}, nil
	}
	return rs, nil
}

// Calendar renders the trip as an iCalendar document.
func (s *TripService) Calendar(ctx context.Context, id uuid.UUID) ([]byte, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Calendar: %w", err)
	}
	data, err := s.calendar.Render(trip)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Calendar: %w", err)
	}
	return data, nil
}

// SetImage stores the raw cover image bytes under a generated filename,
// points the trip's ImageRef at it, and removes the previous image if any.
func (s *TripService) SetImage(ctx context.Context, id uuid.UUID, data []byte) (domain.Trip, error) {
	if len(data) == 0 {
		return domain.Trip{}, fmt.Errorf("%w: image body is empty", domain.ErrValidation)
	}
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetImage: %w", err)
	}

	name, err := s.images.Save(data)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetImage: %w", err)
	}

	prev := trip.ImageRef
	trip.ImageRef = name
	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		// The trip record was not updated; don't leave the orphan file behind.
		_ = s.images.Remove(name)
		return domain.Trip{}, fmt.Errorf("service.TripService.SetImage: %w", err)
	}
	if prev != "" && prev != name {
		if err := s.images.Remove(prev); err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.SetImage: remove previous image: %w", err)
		}
	}
	return updated, nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - EndDate must not be before StartDate.
//   - Budget must not be negative.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if trip.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	return nil
}
