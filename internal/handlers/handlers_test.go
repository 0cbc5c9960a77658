package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/medibook/medibook-api/internal/models"
	"github.com/medibook/medibook-api/internal/services"
)

// stubDoctorStore records calls and serves canned results.
type stubDoctorStore struct {
	doctors []models.Doctor
	total   int64
	doctor  *models.Doctor
	err     error

	lastFilter      models.DoctorFilter
	lastFields      map[string]interface{}
	createdDoctor   *models.Doctor
	toggleCalls     int
	credentialCalls int
	lastStatus      string
	lastApproved    bool
}

func (s *stubDoctorStore) GetDoctors(_ context.Context, filter models.DoctorFilter, page, limit int64) ([]models.Doctor, int64, error) {
	s.lastFilter = filter
	return s.doctors, s.total, s.err
}

func (s *stubDoctorStore) GetDoctorByID(_ context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.doctor, nil
}

func (s *stubDoctorStore) CreateDoctor(_ context.Context, doctor *models.Doctor) error {
	s.createdDoctor = doctor
	return s.err
}

func (s *stubDoctorStore) UpdateDoctor(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Doctor, error) {
	s.lastFields = fields
	if s.err != nil {
		return nil, s.err
	}
	return s.doctor, nil
}

func (s *stubDoctorStore) ToggleDoctorApproval(_ context.Context, id primitive.ObjectID, approved bool) (*models.Doctor, error) {
	s.toggleCalls++
	s.lastApproved = approved
	if s.err != nil {
		return nil, s.err
	}
	return s.doctor, nil
}

func (s *stubDoctorStore) UpdateCredentialStatus(_ context.Context, id primitive.ObjectID, status string) (*models.Doctor, error) {
	s.credentialCalls++
	s.lastStatus = status
	if s.err != nil {
		return nil, s.err
	}
	return s.doctor, nil
}

func (s *stubDoctorStore) GetSpecialties(_ context.Context) ([]models.Specialty, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Specialty{{ID: "cardio", Name: "Cardiology"}}, nil
}

// stubBookingStore records calls and serves canned results.
type stubBookingStore struct {
	bookings []models.Booking
	total    int64
	updated  int64
	err      error

	lastFilter  models.BookingFilter
	lastIDs     []primitive.ObjectID
	lastStatus  string
	created     *models.Booking
	statusCalls int
}

func (s *stubBookingStore) GetBookings(_ context.Context, filter models.BookingFilter, page, limit int64) ([]models.Booking, int64, error) {
	s.lastFilter = filter
	return s.bookings, s.total, s.err
}

func (s *stubBookingStore) GetPatientBookings(_ context.Context, patientID primitive.ObjectID) ([]models.Booking, error) {
	return s.bookings, s.err
}

func (s *stubBookingStore) CreateBooking(_ context.Context, booking *models.Booking) error {
	s.created = booking
	return s.err
}

func (s *stubBookingStore) UpdateBookingStatus(_ context.Context, ids []primitive.ObjectID, status string) (int64, error) {
	s.statusCalls++
	s.lastIDs = ids
	s.lastStatus = status
	return s.updated, s.err
}

// stubUserStore serves a single canned user.
type stubUserStore struct {
	user *models.User
	err  error
}

func (s *stubUserStore) CreateUser(_ context.Context, user *models.User) error {
	return s.err
}

func (s *stubUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserStore) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type testStores struct {
	doctors  *stubDoctorStore
	bookings *stubBookingStore
	users    *stubUserStore
}

// newTestRouter wires every route without auth middleware; asPrincipal
// injects the given identity the way the real middleware would.
func newTestRouter(st testStores, asUserID, asRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(st.doctors, st.bookings, st.users, services.NewMetricsService(), zap.NewNop())

	r := gin.New()
	if asUserID != "" {
		r.Use(func(c *gin.Context) {
			c.Set("userID", asUserID)
			c.Set("userRole", asRole)
			c.Next()
		})
	}

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/api/doctors", h.SearchDoctors)
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings", h.MyBookings)
	r.GET("/api/admin/doctors", h.ListDoctors)
	r.GET("/api/admin/doctors/specialties", h.ListSpecialties)
	r.GET("/api/admin/doctors/:id", h.GetDoctor)
	r.PUT("/api/admin/doctors/:id", h.UpdateDoctor)
	r.PATCH("/api/admin/doctors/:id/approval", h.ToggleApproval)
	r.PATCH("/api/admin/doctors/:id/credentials", h.UpdateCredentials)
	r.GET("/api/admin/bookings", h.ListBookings)
	r.PATCH("/api/admin/bookings/status", h.BulkUpdateBookingStatus)
	r.GET("/api/admin/metrics", h.GetMetrics)
	return r
}

func defaultStores() testStores {
	return testStores{
		doctors:  &stubDoctorStore{},
		bookings: &stubBookingStore{},
		users:    &stubUserStore{},
	}
}
