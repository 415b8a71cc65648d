package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cribnosh/nosh-backend/api/middleware"
	"github.com/cribnosh/nosh-backend/api/responses"
	"github.com/cribnosh/nosh-backend/api/validators"
	grouporderssvc "github.com/cribnosh/nosh-backend/internal/grouporders"
	pkgerrors "github.com/cribnosh/nosh-backend/pkg/errors"
	"github.com/cribnosh/nosh-backend/pkg/logger"
	"github.com/cribnosh/nosh-backend/pkg/types"
)

// GroupOrderCreate opens a new group order for the authenticated user.
func GroupOrderCreate(svc grouporderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "group order service unavailable"))
			return
		}

		userID, ok := callerID(w, r, logg)
		if !ok {
			return
		}

		var payload createGroupOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.Create(r.Context(), grouporderssvc.CreateGroupOrderInput{
			CreatedBy:       userID,
			ChefID:          payload.ChefID,
			RestaurantName:  payload.RestaurantName,
			Title:           payload.Title,
			InitialBudget:   payload.InitialBudget,
			DeliveryAddress: payload.DeliveryAddress,
			DeliveryTime:    payload.DeliveryTime,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, detail)
	}
}

// GroupOrderDetail returns the current state of one group order.
func GroupOrderDetail(svc grouporderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "group order service unavailable"))
			return
		}

		groupOrderID, ok := groupOrderIDParam(w, r, logg)
		if !ok {
			return
		}

		detail, err := svc.Get(r.Context(), groupOrderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// GroupOrderShareView serves the unauthenticated share-link view.
func GroupOrderShareView(svc grouporderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "group order service unavailable"))
			return
		}

		token := chi.URLParam(r, "token")
		if token == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "share token required"))
			return
		}

		detail, err := svc.GetByShareToken(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// GroupOrderJoin adds the authenticated user as a participant.
func GroupOrderJoin(svc grouporderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "group order service unavailable"))
			return
		}

		userID, ok := callerID(w, r, logg)
		if !ok {
			return
		}
		groupOrderID, ok := groupOrderIDParam(w, r, logg)
		if !ok {
			return
		}

		var payload joinGroupOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.Join(r.Context(), grouporderssvc.JoinGroupOrderInput{
			GroupOrderID: groupOrderID,
			UserID:       userID,
			Items:        payload.Items,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// GroupOrderClose finalizes the group order into a restaurant order.
func GroupOrderClose(svc grouporderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "group order service unavailable"))
			return
		}

		userID, ok := callerID(w, r, logg)
		if !ok {
			return
		}
		groupOrderID, ok := groupOrderIDParam(w, r, logg)
		if !ok {
			return
		}

		result, err := svc.Close(r.Context(), grouporderssvc.CloseGroupOrderInput{
			GroupOrderID: groupOrderID,
			ClosedBy:     userID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// GroupOrderBudgetChipIn adds to the shared budget pot.
func GroupOrderBudgetChipIn(svc grouporderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "group order service unavailable"))
			return
		}

		userID, ok := callerID(w, r, logg)
		if !ok {
			return
		}
		groupOrderID, ok := groupOrderIDParam(w, r, logg)
		if !ok {
			return
		}

		var payload budgetChipInRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.ChipInToBudget(r.Context(), grouporderssvc.BudgetChipInInput{
			GroupOrderID: groupOrderID,
			UserID:       userID,
			Amount:       payload.Amount,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// GroupOrderSelectionStart moves the order from budgeting into selection.
func GroupOrderSelectionStart(svc grouporderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "group order service unavailable"))
			return
		}

		userID, ok := callerID(w, r, logg)
		if !ok {
			return
		}
		groupOrderID, ok := groupOrderIDParam(w, r, logg)
		if !ok {
			return
		}

		detail, err := svc.StartSelection(r.Context(), groupOrderID, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// GroupOrderSelectionsUpdate replaces the caller's item selections.
func GroupOrderSelectionsUpdate(svc grouporderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "group order service unavailable"))
			return
		}

		userID, ok := callerID(w, r, logg)
		if !ok {
			return
		}
		groupOrderID, ok := groupOrderIDParam(w, r, logg)
		if !ok {
			return
		}

		var payload updateSelectionsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.UpdateSelections(r.Context(), grouporderssvc.UpdateSelectionsInput{
			GroupOrderID: groupOrderID,
			UserID:       userID,
			Items:        payload.Items,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// GroupOrderSelectionsReady marks the caller's selections as final.
func GroupOrderSelectionsReady(svc grouporderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "group order service unavailable"))
			return
		}

		userID, ok := callerID(w, r, logg)
		if !ok {
			return
		}
		groupOrderID, ok := groupOrderIDParam(w, r, logg)
		if !ok {
			return
		}

		detail, err := svc.MarkSelectionsReady(r.Context(), groupOrderID, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

type createGroupOrderRequest struct {
	ChefID          uuid.UUID      `json:"chef_id" validate:"required"`
	RestaurantName  string         `json:"restaurant_name" validate:"required"`
	Title           string         `json:"title"`
	InitialBudget   int            `json:"initial_budget" validate:"min=0"`
	DeliveryAddress *types.Address `json:"delivery_address"`
	DeliveryTime    *string        `json:"delivery_time"`
}

type joinGroupOrderRequest struct {
	Items types.OrderItems `json:"items"`
}

type budgetChipInRequest struct {
	Amount int `json:"amount" validate:"required,min=1"`
}

type updateSelectionsRequest struct {
	Items types.OrderItems `json:"items" validate:"required"`
}

func callerID(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (uuid.UUID, bool) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id"))
		return uuid.Nil, false
	}
	return userID, true
}

func groupOrderIDParam(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (uuid.UUID, bool) {
	groupOrderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid group order id"))
		return uuid.Nil, false
	}
	return groupOrderID, true
}
