package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/groupflight/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
// Calling it again on the same request adds to the existing parameters.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures inserts rows directly through GORM, bypassing the stores, so
// store and handler tests start from known state.
type Fixtures struct {
	db *gorm.DB
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *gorm.DB {
	return f.db
}

func (f *Fixtures) create(ctx context.Context, v any, what string) {
	f.t.Helper()
	if err := f.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error; err != nil {
		f.t.Fatalf("failed to create test %s: %v", what, err)
	}
}

// CreateAirline creates a test airline.
func (f *Fixtures) CreateAirline(ctx context.Context, name string, founded int) models.Airline {
	f.t.Helper()
	a := models.Airline{AirlineName: name, AirlineNameCI: text.Fold(name), FoundingYear: founded}
	f.create(ctx, &a, "airline")
	return a
}

// CreateLocation creates a test location.
func (f *Fixtures) CreateLocation(ctx context.Context, name string) models.Location {
	f.t.Helper()
	l := models.Location{LocationName: name, LocationAddress: "1 Test Way"}
	f.create(ctx, &l, "location")
	return l
}

// CreateOrganization creates a test organization.
func (f *Fixtures) CreateOrganization(ctx context.Context, name string) models.Organization {
	f.t.Helper()
	o := models.Organization{OrganizationName: name}
	f.create(ctx, &o, "organization")
	return o
}

// CreateGroup creates a test group.
func (f *Fixtures) CreateGroup(ctx context.Context, name string) models.Group {
	f.t.Helper()
	g := models.Group{GroupName: name}
	f.create(ctx, &g, "group")
	return g
}

// CreateEvent creates a test event at loc hosted by org.
func (f *Fixtures) CreateEvent(ctx context.Context, name string, loc models.Location, org models.Organization) models.Event {
	f.t.Helper()
	e := models.Event{
		EventName:           name,
		RegistrationWebsite: "https://example.com/" + text.Fold(name),
		LocationID:          loc.LocationID,
		OrganizationID:      org.OrganizationID,
	}
	f.create(ctx, &e, "event")
	return e
}

// CreateFlight creates a test flight for airline from → to, departing at dep.
func (f *Fixtures) CreateFlight(ctx context.Context, airline models.Airline, number, registration string, from, to models.Location, dep time.Time) models.Flight {
	f.t.Helper()
	fl := models.Flight{
		FlightNumber:        number,
		DepartureTime:       dep,
		ArrivalTime:         dep.Add(2 * time.Hour),
		AirplaneModel:       "A320",
		RegistrationNum:     registration,
		AirlineID:           airline.AirlineID,
		DepartureLocationID: from.LocationID,
		ArrivalLocationID:   to.LocationID,
	}
	f.create(ctx, &fl, "flight")
	return fl
}

// Associate links event and group through the junction table.
func (f *Fixtures) Associate(ctx context.Context, e models.Event, g models.Group) {
	f.t.Helper()
	err := f.db.WithContext(ctx).Exec("INSERT INTO event_groups (event_id, group_id) VALUES (?, ?)", e.EventID, g.GroupID).Error
	if err != nil {
		f.t.Fatalf("failed to associate event %d with group %d: %v", e.EventID, g.GroupID, err)
	}
}

// JunctionCount returns how many junction rows link event and group.
func (f *Fixtures) JunctionCount(ctx context.Context, eventID, groupID uint) int64 {
	f.t.Helper()
	var n int64
	err := f.db.WithContext(ctx).Table("event_groups").
		Where("event_id = ? AND group_id = ?", eventID, groupID).
		Count(&n).Error
	if err != nil {
		f.t.Fatalf("count event_groups: %v", err)
	}
	return n
}

// CreateUser creates a test user with the given password and role. The
// cheapest bcrypt cost keeps tests fast.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, password, role string) models.User {
	f.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("hash password: %v", err)
	}
	u := models.User{
		Email:        text.Fold(email),
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         role,
	}
	f.create(ctx, &u, "user")
	return u
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email, password string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, password, models.RoleAdmin)
}
