package controllers

import (
	"net/http"

	"github.com/cribnosh/nosh-backend/api/responses"
	"github.com/cribnosh/nosh-backend/api/validators"
	connectionssvc "github.com/cribnosh/nosh-backend/internal/connections"
	pkgerrors "github.com/cribnosh/nosh-backend/pkg/errors"
	"github.com/cribnosh/nosh-backend/pkg/logger"
	"github.com/cribnosh/nosh-backend/pkg/pagination"
)

// ConnectionsList returns the authenticated user's derived connections.
func ConnectionsList(svc connectionssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "connections service unavailable"))
			return
		}

		userID, ok := callerID(w, r, logg)
		if !ok {
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListConnections(r.Context(), userID, pagination.Params{Limit: limit})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}
