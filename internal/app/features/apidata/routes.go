// internal/app/features/apidata/routes.go
package apidata

import (
	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the data API (typically at "/api" from bootstrap). Reads
// are public; writes need a signed-in user, whose identity arrives either
// from the browser or forwarded by the MVC pages.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Route("/AirlineData", func(r chi.Router) {
		r.Get("/ListAirlines", h.ListAirlines)
		r.Get("/ListAirlines/{search}", h.ListAirlines)
		r.Get("/FindAirline/{id}", h.FindAirline)
		r.Group(func(pr chi.Router) {
			pr.Use(sm.RequireSignedIn)
			pr.Post("/AddAirline", h.AddAirline)
			pr.Post("/UpdateAirline/{id}", h.UpdateAirline)
			pr.Post("/DeleteAirline/{id}", h.DeleteAirline)
		})
	})

	r.Route("/FlightData", func(r chi.Router) {
		r.Get("/ListFlights", h.ListFlights)
		r.Get("/ListFlightsForAirline/{id}", h.ListFlightsForAirline)
		r.Get("/ListPlanesForAirline/{id}", h.ListPlanesForAirline)
		r.Get("/ListFlightsForLocation/{id}", h.ListFlightsForLocation)
		r.Get("/FindFlight/{id}", h.FindFlight)
		r.Group(func(pr chi.Router) {
			pr.Use(sm.RequireSignedIn)
			pr.Post("/AddFlight", h.AddFlight)
			pr.Post("/UpdateFlight/{id}", h.UpdateFlight)
			pr.Post("/DeleteFlight/{id}", h.DeleteFlight)
		})
	})

	r.Route("/EventData", func(r chi.Router) {
		r.Get("/ListEvents", h.ListEvents)
		r.Get("/ListEventsForGroup/{id}", h.ListEventsForGroup)
		r.Get("/ListEventsForLocation/{id}", h.ListEventsForLocation)
		r.Get("/ListEventsForOrganization/{id}", h.ListEventsForOrganization)
		r.Get("/FindEvent/{id}", h.FindEvent)
		r.Group(func(pr chi.Router) {
			pr.Use(sm.RequireSignedIn)
			pr.Post("/AddEvent", h.AddEvent)
			pr.Post("/UpdateEvent/{id}", h.UpdateEvent)
			pr.Post("/DeleteEvent/{id}", h.DeleteEvent)
			pr.Post("/AssociateEventWithGroup/{eventId}/{groupId}", h.AssociateEventWithGroup)
			pr.Post("/UnAssociateEventWithGroup/{eventId}/{groupId}", h.UnAssociateEventWithGroup)
		})
	})

	r.Route("/GroupData", func(r chi.Router) {
		r.Get("/ListGroups", h.ListGroups)
		r.Get("/ListGroupsForEvent/{id}", h.ListGroupsForEvent)
		r.Get("/ListGroupsNotInEvent/{id}", h.ListGroupsNotInEvent)
		r.Get("/FindGroup/{id}", h.FindGroup)
		r.Group(func(pr chi.Router) {
			pr.Use(sm.RequireSignedIn)
			pr.Post("/AddGroup", h.AddGroup)
			pr.Post("/UpdateGroup/{id}", h.UpdateGroup)
			pr.Post("/DeleteGroup/{id}", h.DeleteGroup)
		})
	})

	r.Route("/LocationData", func(r chi.Router) {
		r.Get("/ListLocations", h.ListLocations)
		r.Get("/FindLocation/{id}", h.FindLocation)
		r.Group(func(pr chi.Router) {
			pr.Use(sm.RequireSignedIn)
			pr.Post("/AddLocation", h.AddLocation)
			pr.Post("/UpdateLocation/{id}", h.UpdateLocation)
			pr.Post("/DeleteLocation/{id}", h.DeleteLocation)
		})
	})

	r.Route("/OrganizationData", func(r chi.Router) {
		r.Get("/ListOrganizations", h.ListOrganizations)
		r.Get("/FindOrganization/{id}", h.FindOrganization)
		r.Group(func(pr chi.Router) {
			pr.Use(sm.RequireSignedIn)
			pr.Post("/AddOrganization", h.AddOrganization)
			pr.Post("/UpdateOrganization/{id}", h.UpdateOrganization)
			pr.Post("/DeleteOrganization/{id}", h.DeleteOrganization)
		})
	})

	return r
}
