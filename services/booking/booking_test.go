package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"
	catalogRepo "clinicbook/database/repository/catalog"
	clinicRepo "clinicbook/database/repository/clinic"
	"clinicbook/models"
	"clinicbook/services/scheduling"
)

// fakeAppointmentRepo mimics the Mongo repository including the partial
// unique slot index: inserting or moving onto an occupied active slot fails
// with ErrSlotTaken.
type fakeAppointmentRepo struct {
	byID  map[string]*models.Appointment
	order []string

	// staleReads hides rows from ListByDate/List so the validator can pass
	// while the unique index still refuses the write, like a lost race.
	staleReads bool
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: map[string]*models.Appointment{}}
}

func (r *fakeAppointmentRepo) slotOccupied(apt *models.Appointment) bool {
	for _, id := range r.order {
		other := r.byID[id]
		if other.ID == apt.ID || !other.Active {
			continue
		}
		if other.DoctorID == apt.DoctorID && other.Date == apt.Date && other.Time == apt.Time {
			return true
		}
	}
	return false
}

func (r *fakeAppointmentRepo) Create(_ context.Context, apt *models.Appointment) error {
	apt.Active = apt.Status != models.StatusCancelled
	if apt.Active && r.slotOccupied(apt) {
		return appointmentRepo.ErrSlotTaken
	}
	cp := *apt
	r.byID[apt.ID] = &cp
	r.order = append(r.order, apt.ID)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	apt, ok := r.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	cp := *apt
	return &cp, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, apt *models.Appointment) error {
	if _, ok := r.byID[apt.ID]; !ok {
		return appointmentRepo.ErrNotFound
	}
	apt.Active = apt.Status != models.StatusCancelled
	if apt.Active && r.slotOccupied(apt) {
		return appointmentRepo.ErrSlotTaken
	}
	cp := *apt
	r.byID[apt.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id, status string) error {
	apt, ok := r.byID[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	apt.Status = status
	apt.Active = status != models.StatusCancelled
	return nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, f appointmentRepo.Filter) ([]models.Appointment, error) {
	if r.staleReads {
		return nil, nil
	}
	var out []models.Appointment
	for _, id := range r.order {
		apt := r.byID[id]
		if f.DoctorID != "" && apt.DoctorID != f.DoctorID {
			continue
		}
		if f.PatientID != "" && apt.PatientID != f.PatientID {
			continue
		}
		if f.Date != "" && apt.Date != f.Date {
			continue
		}
		if f.Status != "" && apt.Status != f.Status {
			continue
		}
		out = append(out, *apt)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.List(ctx, appointmentRepo.Filter{Date: date})
}

func (r *fakeAppointmentRepo) EnsureIndexes() error { return nil }

type fakeDoctorRepo struct {
	doctors []models.Doctor
}

func (r *fakeDoctorRepo) Create(_ context.Context, doc *models.Doctor) error {
	r.doctors = append(r.doctors, *doc)
	return nil
}

func (r *fakeDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			cp := r.doctors[i]
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("doctor %s: not found", id)
}

func (r *fakeDoctorRepo) GetAll(_ context.Context) ([]models.Doctor, error) {
	return append([]models.Doctor(nil), r.doctors...), nil
}

func (r *fakeDoctorRepo) SetAvailability(_ context.Context, id string, available bool) error {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			r.doctors[i].Available = available
			return nil
		}
	}
	return fmt.Errorf("doctor %s: not found", id)
}

func (r *fakeDoctorRepo) UpdateSchedule(_ context.Context, id string, schedule models.WeeklySchedule) error {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			r.doctors[i].Schedule = schedule
			return nil
		}
	}
	return fmt.Errorf("doctor %s: not found", id)
}

func (r *fakeDoctorRepo) EnsureIndexes() error { return nil }

type fakeClinicRepo struct {
	week models.WeeklySchedule
}

func (r *fakeClinicRepo) GetDay(_ context.Context, day string) (*models.DayWindow, error) {
	window, ok := r.week[day]
	if !ok {
		return nil, clinicRepo.ErrNotFound
	}
	cp := window
	return &cp, nil
}

func (r *fakeClinicRepo) GetWeek(_ context.Context) (models.WeeklySchedule, error) {
	return r.week, nil
}

func (r *fakeClinicRepo) UpsertDay(_ context.Context, window models.DayWindow) error {
	r.week[window.Day] = window
	return nil
}

type fakeCatalogRepo struct {
	services   map[string]models.Service
	promotions map[string]models.Promotion
}

func (r *fakeCatalogRepo) GetServiceByID(_ context.Context, id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &svc, nil
}

func (r *fakeCatalogRepo) ListServices(_ context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range r.services {
		out = append(out, svc)
	}
	return out, nil
}

func (r *fakeCatalogRepo) GetPromotionByID(_ context.Context, id string) (*models.Promotion, error) {
	promo, ok := r.promotions[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &promo, nil
}

func (r *fakeCatalogRepo) ListPromotions(_ context.Context, activeOnly bool) ([]models.Promotion, error) {
	var out []models.Promotion
	for _, promo := range r.promotions {
		if activeOnly && !promo.Active {
			continue
		}
		out = append(out, promo)
	}
	return out, nil
}

// testEnv wires a booking service against in-memory fakes. The clinic is open
// tomorrow 09:00-18:00 with a 12:00-13:00 break; two doctors work 09:00-17:00.
type testEnv struct {
	svc          *DefaultBookingService
	appointments *fakeAppointmentRepo
	doctors      *fakeDoctorRepo
	date         string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tomorrow := time.Now().AddDate(0, 0, 1)
	date := tomorrow.Format("2006-01-02")
	weekday := tomorrow.Weekday().String()

	workday := models.DayWindow{
		Day: weekday, IsOpen: true, StartTime: "09:00", EndTime: "17:00",
	}
	appointments := newFakeAppointmentRepo()
	doctors := &fakeDoctorRepo{doctors: []models.Doctor{
		{ID: "dr-lee", Name: "Dr. Lee", Available: true,
			Schedule: models.WeeklySchedule{weekday: workday}},
		{ID: "dr-patel", Name: "Dr. Patel", Available: true,
			Schedule: models.WeeklySchedule{weekday: workday}},
	}}
	clinic := &fakeClinicRepo{week: models.WeeklySchedule{
		weekday: {Day: weekday, IsOpen: true, StartTime: "09:00", EndTime: "18:00",
			BreakStartTime: "12:00", BreakEndTime: "13:00"},
	}}
	catalog := &fakeCatalogRepo{
		services: map[string]models.Service{
			"svc-clean": {ID: "svc-clean", Name: "Cleaning", DurationMinutes: 30},
			"svc-root":  {ID: "svc-root", Name: "Root canal", Duration: "1 hour 30 minutes"},
		},
		promotions: map[string]models.Promotion{
			"promo-whitening": {ID: "promo-whitening", Title: "Whitening special",
				ServiceIDs: []string{"svc-clean"}, DurationMinutes: 60, Active: true},
			"promo-expired": {ID: "promo-expired", Title: "Old deal", DurationMinutes: 60, Active: false},
		},
	}

	return &testEnv{
		svc: &DefaultBookingService{
			Appointments:       appointments,
			Doctors:            doctors,
			Clinic:             clinic,
			Catalog:            catalog,
			HorizonDays:        14,
			GranularityMinutes: 30,
		},
		appointments: appointments,
		doctors:      doctors,
		date:         date,
	}
}

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	apt, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-1",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-clean"},
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if apt.Status != models.StatusPending {
		t.Errorf("status = %q, want %q", apt.Status, models.StatusPending)
	}
	if apt.DurationMinutes != 30 {
		t.Errorf("duration = %d, want 30", apt.DurationMinutes)
	}
	if apt.DoctorID != "dr-lee" {
		t.Errorf("doctor = %q, want dr-lee", apt.DoctorID)
	}
	if !apt.Active {
		t.Error("new appointment should be active")
	}

	// Auto-assignment at the contested time lands on the second doctor.
	apt2, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-2",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-clean"},
	})
	if err != nil {
		t.Fatalf("CreateAppointment auto-assign: %v", err)
	}
	if apt2.DoctorID != "dr-patel" {
		t.Errorf("auto-assign landed on %q, want dr-patel", apt2.DoctorID)
	}
}

func TestCreateAppointmentFreeTextDuration(t *testing.T) {
	env := newTestEnv(t)

	apt, err := env.svc.CreateAppointment(context.Background(), CreateAppointmentInput{
		PatientID:  "pat-1",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "09:00",
		ServiceIDs: []string{"svc-root"},
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if apt.DurationMinutes != 90 {
		t.Errorf("duration = %d, want 90 from free-text catalog entry", apt.DurationMinutes)
	}
}

func TestCreateAppointmentPromoOverride(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	apt, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-1",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "09:00",
		ServiceIDs: []string{"svc-clean", "svc-root"},
		PromoID:    "promo-whitening",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if apt.DurationMinutes != 60 {
		t.Errorf("duration = %d, want promo override 60", apt.DurationMinutes)
	}

	if _, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID: "pat-2",
		DoctorID:  "dr-lee",
		Date:      env.date,
		StartTime: "14:00",
		PromoID:   "promo-expired",
	}); err == nil {
		t.Error("expected error for inactive promotion")
	}
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateAppointment(context.Background(), CreateAppointmentInput{
		PatientID:  "pat-1",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-ghost"},
	})
	if !errors.Is(err, catalogRepo.ErrNotFound) {
		t.Errorf("expected catalog ErrNotFound, got %v", err)
	}
}

func TestCreateAppointmentLostRace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-1",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-clean"},
	}); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	// The second writer validates against a stale read, so only the unique
	// index stands between it and a double booking.
	env.appointments.staleReads = true
	_, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-2",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-clean"},
	})
	code, ok := scheduling.RejectionOf(err)
	if !ok || code != scheduling.RejectSlotTaken {
		t.Errorf("expected SlotTaken rejection, got %v", err)
	}
}

func TestRescheduleAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	apt, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-1",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-clean"},
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	// Moving onto its own slot must not conflict with itself.
	moved, err := env.svc.RescheduleAppointment(ctx, apt.ID, RescheduleInput{StartTime: "10:00"})
	if err != nil {
		t.Fatalf("reschedule onto own slot: %v", err)
	}
	if moved.Time != "10:00" {
		t.Errorf("time = %q, want 10:00", moved.Time)
	}

	moved, err = env.svc.RescheduleAppointment(ctx, apt.ID, RescheduleInput{StartTime: "14:00"})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if moved.Time != "14:00" || moved.DoctorID != "dr-lee" {
		t.Errorf("moved to %s/%s, want dr-lee/14:00", moved.DoctorID, moved.Time)
	}

	if _, err := env.svc.RescheduleAppointment(ctx, "ghost", RescheduleInput{StartTime: "15:00"}); !errors.Is(err, appointmentRepo.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown appointment, got %v", err)
	}
}

func TestRescheduleCancelledAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	apt, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-1",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-clean"},
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	if _, err := env.svc.UpdateStatus(ctx, apt.ID, models.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := env.svc.RescheduleAppointment(ctx, apt.ID, RescheduleInput{StartTime: "14:00"}); err == nil {
		t.Error("expected error rescheduling a cancelled appointment")
	}
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	apt, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-1",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-clean"},
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	if _, err := env.svc.UpdateStatus(ctx, apt.ID, "snoozed"); err == nil {
		t.Error("expected error for invalid status")
	}

	cancelled, err := env.svc.UpdateStatus(ctx, apt.ID, models.StatusCancelled)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Active {
		t.Error("cancelled appointment should not be active")
	}

	// The freed slot is immediately bookable again.
	if _, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-2",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-clean"},
	}); err != nil {
		t.Errorf("rebooking a cancelled slot: %v", err)
	}
}

func TestReactivateCancelledAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 10:00-11:30 root canal, cancelled; a 10:30-11:00 cleaning books the gap.
	first, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-1",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-root"},
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	if _, err := env.svc.UpdateStatus(ctx, first.ID, models.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-2",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "10:30",
		ServiceIDs: []string{"svc-clean"},
	}); err != nil {
		t.Fatalf("interim booking: %v", err)
	}

	// Reactivating the cancelled 90-minute booking would overlap the interim
	// 10:30 cleaning, so it must be refused.
	_, err = env.svc.UpdateStatus(ctx, first.ID, models.StatusConfirmed)
	code, ok := scheduling.RejectionOf(err)
	if !ok || code != scheduling.RejectDoctorUnavailable {
		t.Errorf("reactivation over a rebooked slot: want %s rejection, got %v",
			scheduling.RejectDoctorUnavailable, err)
	}
	if apt, err := env.svc.ListAppointments(ctx, appointmentRepo.Filter{Status: models.StatusCancelled}); err != nil || len(apt) != 1 {
		t.Errorf("refused reactivation must leave the appointment cancelled, got %v (%v)", apt, err)
	}

	// With the slot still free, reactivation goes through.
	second, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-3",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "14:00",
		ServiceIDs: []string{"svc-clean"},
	})
	if err != nil {
		t.Fatalf("second appointment: %v", err)
	}
	if _, err := env.svc.UpdateStatus(ctx, second.ID, models.StatusCancelled); err != nil {
		t.Fatalf("cancel second: %v", err)
	}
	revived, err := env.svc.UpdateStatus(ctx, second.ID, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("reactivate into a free slot: %v", err)
	}
	if !revived.Active || revived.Status != models.StatusConfirmed {
		t.Errorf("revived appointment = %+v, want active and confirmed", revived)
	}
}

func TestAvailableSlots(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.CreateAppointment(ctx, CreateAppointmentInput{
		PatientID:  "pat-1",
		DoctorID:   "dr-lee",
		Date:       env.date,
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-clean"},
	}); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	slots, err := env.svc.AvailableSlots(ctx, SlotsQuery{
		DoctorID:   "dr-lee",
		Date:       env.date,
		ServiceIDs: []string{"svc-clean"},
	})
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	got := map[string]bool{}
	for _, s := range slots {
		got[s] = true
	}
	if got["10:00"] {
		t.Error("booked 10:00 should not be offered")
	}
	if !got["10:30"] {
		t.Error("back-to-back 10:30 should be offered")
	}
	if got["12:00"] || got["12:30"] {
		t.Error("lunch break slots should not be offered")
	}
	if !got["11:30"] {
		t.Error("11:30 ends exactly at the break and should be offered")
	}
	if !got["16:30"] {
		t.Error("16:30 is the last slot inside the doctor's window and should be offered")
	}
	if got["17:00"] {
		t.Error("17:00 is outside the doctor's window")
	}

	// The busy doctor's booking does not shadow a colleague.
	slots, err = env.svc.AvailableSlots(ctx, SlotsQuery{
		DoctorID:   "dr-patel",
		Date:       env.date,
		ServiceIDs: []string{"svc-clean"},
	})
	if err != nil {
		t.Fatalf("AvailableSlots for second doctor: %v", err)
	}
	found := false
	for _, s := range slots {
		if s == "10:00" {
			found = true
		}
	}
	if !found {
		t.Error("dr-patel should still be offered 10:00")
	}
}

func TestAvailableSlotsClosedDay(t *testing.T) {
	env := newTestEnv(t)

	dayAfter := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	slots, err := env.svc.AvailableSlots(context.Background(), SlotsQuery{
		DoctorID:   "dr-lee",
		Date:       dayAfter,
		ServiceIDs: []string{"svc-clean"},
	})
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on an unconfigured day, got %v", slots)
	}
}
