package routers

import (
	filteredResponses "formfillout-service/internal/app/services/core/filtered_responses"
	"formfillout-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachFilteredResponseRoutes(router chi.Router, filteredResponseController *filteredResponses.FilteredResponseController) {
	router.Get(constvars.RouteFilteredResponses, filteredResponseController.FindFilteredResponses)
}
