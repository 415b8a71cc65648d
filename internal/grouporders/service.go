package grouporders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cribnosh/nosh-backend/internal/orders"
	"github.com/cribnosh/nosh-backend/internal/users"
	"github.com/cribnosh/nosh-backend/pkg/config"
	pkgdb "github.com/cribnosh/nosh-backend/pkg/db"
	"github.com/cribnosh/nosh-backend/pkg/db/models"
	"github.com/cribnosh/nosh-backend/pkg/enums"
	pkgerrors "github.com/cribnosh/nosh-backend/pkg/errors"
	"github.com/cribnosh/nosh-backend/pkg/logger"
	"github.com/cribnosh/nosh-backend/pkg/metrics"
	"github.com/cribnosh/nosh-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	groupCodePrefix        = "GRP"
	orderCodePrefix        = "ORD"
	defaultPrepTimeMinutes = 30
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type userLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type graphConnector interface {
	ConnectPairwise(ctx context.Context, newUserID uuid.UUID, existingUserIDs []uuid.UUID) error
}

// Service drives the group order lifecycle from creation to finalization.
type Service interface {
	Create(ctx context.Context, input CreateGroupOrderInput) (*GroupOrderDetail, error)
	Get(ctx context.Context, groupOrderID uuid.UUID) (*GroupOrderDetail, error)
	GetByShareToken(ctx context.Context, token string) (*GroupOrderDetail, error)
	Join(ctx context.Context, input JoinGroupOrderInput) (*GroupOrderDetail, error)
	Close(ctx context.Context, input CloseGroupOrderInput) (*CloseResult, error)
	ChipInToBudget(ctx context.Context, input BudgetChipInInput) (*GroupOrderDetail, error)
	StartSelection(ctx context.Context, groupOrderID, userID uuid.UUID) (*GroupOrderDetail, error)
	UpdateSelections(ctx context.Context, input UpdateSelectionsInput) (*GroupOrderDetail, error)
	MarkSelectionsReady(ctx context.Context, groupOrderID, userID uuid.UUID) (*GroupOrderDetail, error)
}

type service struct {
	repo    Repository
	orders  orders.Repository
	users   userLookup
	graph   graphConnector
	tx      txRunner
	cfg     config.GroupOrdersConfig
	logg    *logger.Logger
	metrics *metrics.GroupOrderMetrics
	now     func() time.Time
}

// NewService builds a group orders service with the required dependencies.
func NewService(
	repo Repository,
	ordersRepo orders.Repository,
	userRepo userLookup,
	graph graphConnector,
	tx txRunner,
	cfg config.GroupOrdersConfig,
	logg *logger.Logger,
	m *metrics.GroupOrderMetrics,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("group orders repository required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if userRepo == nil {
		return nil, fmt.Errorf("user lookup required")
	}
	if graph == nil {
		return nil, fmt.Errorf("graph connector required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:    repo,
		orders:  ordersRepo,
		users:   userRepo,
		graph:   graph,
		tx:      tx,
		cfg:     cfg,
		logg:    logg,
		metrics: m,
		now:     time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateGroupOrderInput) (*GroupOrderDetail, error) {
	if input.CreatedBy == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.ChefID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "chef id required")
	}
	if strings.TrimSpace(input.RestaurantName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant name required")
	}
	if input.InitialBudget < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "initial budget cannot be negative")
	}

	creator, err := s.users.FindByID(ctx, input.CreatedBy)
	if err != nil {
		if IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "creator not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading creator")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = fmt.Sprintf("%s's group order from %s", creator.Name, input.RestaurantName)
	}

	now := s.now()
	token, err := security.GenerateShareToken()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating share token")
	}
	code, err := security.GenerateCode(groupCodePrefix, now)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating group order code")
	}

	groupOrder := &models.GroupOrder{
		ID:              uuid.New(),
		Code:            code,
		CreatedBy:       input.CreatedBy,
		ChefID:          input.ChefID,
		RestaurantName:  input.RestaurantName,
		Title:           title,
		Status:          enums.GroupOrderStatusActive,
		SelectionPhase:  enums.SelectionPhaseBudgeting,
		InitialBudget:   input.InitialBudget,
		TotalBudget:     input.InitialBudget,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryTime:    input.DeliveryTime,
		ShareToken:      token,
		ShareExpiresAt:  now.Add(s.cfg.ShareLinkTTL()),
		ExpiresAt:       now.Add(s.cfg.DefaultTTL()),
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, groupOrder)
	})
	if err != nil {
		s.metrics.IncFailure("create")
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating group order")
	}

	s.metrics.IncSuccess("create")
	s.logg.Info(s.logg.WithGroupOrderID(ctx, groupOrder.ID.String()), "group order created")
	return s.detail(groupOrder, nil), nil
}

func (s *service) Get(ctx context.Context, groupOrderID uuid.UUID) (*GroupOrderDetail, error) {
	groupOrder, err := s.load(ctx, groupOrderID)
	if err != nil {
		return nil, err
	}
	return s.detail(groupOrder, groupOrder.Participants), nil
}

// GetByShareToken serves the public share-link view. The link dies after the
// share expiry even though the underlying row remains.
func (s *service) GetByShareToken(ctx context.Context, token string) (*GroupOrderDetail, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrNotFound
	}
	groupOrder, err := s.repo.FindByShareToken(ctx, token)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading group order by share token")
	}
	if s.now().After(groupOrder.ShareExpiresAt) {
		return nil, ErrNotFound
	}
	return s.detail(groupOrder, groupOrder.Participants), nil
}

func (s *service) Join(ctx context.Context, input JoinGroupOrderInput) (*GroupOrderDetail, error) {
	if input.GroupOrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "group order id required")
	}
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if err := input.Items.Validate(); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	joiner, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		if IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading joining user")
	}

	var existingUserIDs []uuid.UUID
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		groupOrder, err := s.lockActive(ctx, repo, input.GroupOrderID)
		if err != nil {
			return err
		}

		participants, err := repo.ListParticipants(ctx, groupOrder.ID)
		if err != nil {
			return err
		}
		for _, p := range participants {
			if p.UserID == input.UserID {
				return ErrAlreadyJoined
			}
			existingUserIDs = append(existingUserIDs, p.UserID)
		}

		position := len(participants) + 1
		participant := &models.GroupOrderParticipant{
			ID:                uuid.New(),
			GroupOrderID:      groupOrder.ID,
			UserID:            input.UserID,
			UserName:          joiner.Name,
			UserInitials:      users.Initials(joiner.Name),
			UserColor:         colorForPosition(position),
			Position:          position,
			Items:             input.Items,
			TotalContribution: input.Items.Sum(),
			SelectionStatus:   enums.SelectionStatusNotReady,
			PaymentStatus:     enums.PaymentStatusPending,
		}
		if err := repo.CreateParticipant(ctx, participant); err != nil {
			if pkgdb.IsUniqueViolation(err, "uq_group_order_participant") {
				return ErrAlreadyJoined
			}
			return err
		}

		participants = append(participants, *participant)
		return s.repriceLocked(ctx, repo, groupOrder.ID, participants)
	})
	if err != nil {
		s.metrics.IncFailure("join")
		return nil, err
	}

	s.metrics.IncSuccess("join")

	// Best effort: a failed graph update never undoes a committed join.
	if len(existingUserIDs) > 0 {
		if err := s.graph.ConnectPairwise(ctx, input.UserID, existingUserIDs); err != nil {
			s.logg.Error(s.logg.WithGroupOrderID(ctx, input.GroupOrderID.String()), "updating connections after join", err)
		}
	}

	return s.Get(ctx, input.GroupOrderID)
}

func (s *service) Close(ctx context.Context, input CloseGroupOrderInput) (*CloseResult, error) {
	if input.GroupOrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "group order id required")
	}
	if input.ClosedBy == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	var (
		orderID      uuid.UUID
		orderCode    string
		participantN int
	)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		groupOrder, err := repo.FindByIDForUpdate(ctx, input.GroupOrderID)
		if err != nil {
			if IsNotFound(err) {
				return ErrNotFound
			}
			return err
		}
		if groupOrder.CreatedBy != input.ClosedBy {
			return ErrForbidden
		}
		if effectiveStatus(groupOrder, s.now()) != enums.GroupOrderStatusActive {
			return s.markExpiredLocked(ctx, repo, groupOrder)
		}

		participants, err := repo.ListParticipants(ctx, groupOrder.ID)
		if err != nil {
			return err
		}
		if len(participants) == 0 {
			return ErrEmptyGroupOrder
		}
		participantN = len(participants)

		for _, p := range participants {
			if p.SelectionStatus != enums.SelectionStatusReady {
				s.logg.Warn(s.logg.WithGroupOrderID(ctx, groupOrder.ID.String()),
					"closing group order before all participants marked ready")
				break
			}
		}

		now := s.now()
		code, err := security.GenerateCode(orderCodePrefix, now)
		if err != nil {
			return err
		}

		order := &models.Order{
			ID:                       uuid.New(),
			Code:                     code,
			CustomerID:               groupOrder.CreatedBy,
			ChefID:                   groupOrder.ChefID,
			Status:                   enums.OrderStatusPending,
			PayStatus:                enums.PaymentStatusPending,
			TotalAmount:              groupOrder.FinalAmount,
			DeliveryAddress:          groupOrder.DeliveryAddress,
			DeliveryTime:             groupOrder.DeliveryTime,
			IsGroupOrder:             true,
			GroupOrderID:             &groupOrder.ID,
			ParticipantCount:         len(participants),
			EstimatedPrepTimeMinutes: defaultPrepTimeMinutes,
		}
		ordersRepo := s.orders.WithTx(tx)
		if _, err := ordersRepo.CreateOrder(ctx, order); err != nil {
			return err
		}
		if err := ordersRepo.CreateOrderLineItems(ctx, flattenLineItems(order.ID, participants)); err != nil {
			return err
		}

		orderID = order.ID
		orderCode = order.Code
		return repo.Update(ctx, groupOrder.ID, map[string]any{
			"status":        enums.GroupOrderStatusConfirmed.String(),
			"closed_at":     now,
			"main_order_id": order.ID,
		})
	})
	if err != nil {
		s.metrics.IncFailure("close")
		return nil, err
	}

	s.metrics.IncSuccess("close")
	s.metrics.ObserveParticipants("close", participantN)
	s.logg.Info(s.logg.WithGroupOrderID(ctx, input.GroupOrderID.String()), "group order confirmed")

	detail, err := s.Get(ctx, input.GroupOrderID)
	if err != nil {
		return nil, err
	}
	return &CloseResult{GroupOrder: detail, OrderID: orderID, OrderCode: orderCode}, nil
}

func (s *service) ChipInToBudget(ctx context.Context, input BudgetChipInInput) (*GroupOrderDetail, error) {
	if input.GroupOrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "group order id required")
	}
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.Amount <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "contribution amount must be positive")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		groupOrder, err := s.lockActive(ctx, repo, input.GroupOrderID)
		if err != nil {
			return err
		}

		participant, participants, err := s.findParticipant(ctx, repo, groupOrder.ID, input.UserID)
		if err != nil {
			return err
		}

		if err := repo.UpdateParticipant(ctx, participant.ID, map[string]any{
			"budget_contribution": participant.BudgetContribution + input.Amount,
		}); err != nil {
			return err
		}
		if err := repo.CreateBudgetContribution(ctx, &models.BudgetContribution{
			ID:           uuid.New(),
			GroupOrderID: groupOrder.ID,
			UserID:       input.UserID,
			Amount:       input.Amount,
		}); err != nil {
			return err
		}

		totalBudget := groupOrder.InitialBudget
		for _, p := range participants {
			totalBudget += p.BudgetContribution
		}
		totalBudget += input.Amount

		return repo.Update(ctx, groupOrder.ID, map[string]any{
			"total_budget": totalBudget,
		})
	})
	if err != nil {
		s.metrics.IncFailure("budget_chip_in")
		return nil, err
	}

	s.metrics.IncSuccess("budget_chip_in")
	return s.Get(ctx, input.GroupOrderID)
}

func (s *service) StartSelection(ctx context.Context, groupOrderID, userID uuid.UUID) (*GroupOrderDetail, error) {
	if groupOrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "group order id required")
	}
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		groupOrder, err := s.lockActive(ctx, repo, groupOrderID)
		if err != nil {
			return err
		}
		if groupOrder.CreatedBy != userID {
			return ErrForbidden
		}
		if groupOrder.SelectionPhase != enums.SelectionPhaseBudgeting {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "selection phase already started")
		}

		return repo.Update(ctx, groupOrder.ID, map[string]any{
			"selection_phase": enums.SelectionPhaseSelecting.String(),
		})
	})
	if err != nil {
		s.metrics.IncFailure("start_selection")
		return nil, err
	}

	s.metrics.IncSuccess("start_selection")
	return s.Get(ctx, groupOrderID)
}

func (s *service) UpdateSelections(ctx context.Context, input UpdateSelectionsInput) (*GroupOrderDetail, error) {
	if input.GroupOrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "group order id required")
	}
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if err := input.Items.Validate(); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		groupOrder, err := s.lockActive(ctx, repo, input.GroupOrderID)
		if err != nil {
			return err
		}
		if groupOrder.SelectionPhase == enums.SelectionPhaseBudgeting {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "selection phase has not started")
		}

		participant, participants, err := s.findParticipant(ctx, repo, groupOrder.ID, input.UserID)
		if err != nil {
			return err
		}

		if err := repo.UpdateParticipant(ctx, participant.ID, map[string]any{
			"items":              input.Items,
			"total_contribution": input.Items.Sum(),
			"selection_status":   enums.SelectionStatusNotReady.String(),
			"selection_ready_at": nil,
		}); err != nil {
			return err
		}

		for i := range participants {
			if participants[i].ID == participant.ID {
				participants[i].Items = input.Items
				participants[i].TotalContribution = input.Items.Sum()
			}
		}
		return s.repriceLocked(ctx, repo, groupOrder.ID, participants)
	})
	if err != nil {
		s.metrics.IncFailure("update_selections")
		return nil, err
	}

	s.metrics.IncSuccess("update_selections")
	return s.Get(ctx, input.GroupOrderID)
}

func (s *service) MarkSelectionsReady(ctx context.Context, groupOrderID, userID uuid.UUID) (*GroupOrderDetail, error) {
	if groupOrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "group order id required")
	}
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		groupOrder, err := s.lockActive(ctx, repo, groupOrderID)
		if err != nil {
			return err
		}

		participant, participants, err := s.findParticipant(ctx, repo, groupOrder.ID, userID)
		if err != nil {
			return err
		}
		if len(participant.Items) == 0 {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "no items selected")
		}

		now := s.now()
		if err := repo.UpdateParticipant(ctx, participant.ID, map[string]any{
			"selection_status":   enums.SelectionStatusReady.String(),
			"selection_ready_at": now,
		}); err != nil {
			return err
		}

		allReady := true
		for _, p := range participants {
			if p.UserID == userID {
				continue
			}
			if p.SelectionStatus != enums.SelectionStatusReady {
				allReady = false
				break
			}
		}
		if allReady {
			return repo.Update(ctx, groupOrder.ID, map[string]any{
				"selection_phase": enums.SelectionPhaseReady.String(),
			})
		}
		return nil
	})
	if err != nil {
		s.metrics.IncFailure("mark_ready")
		return nil, err
	}

	s.metrics.IncSuccess("mark_ready")
	return s.Get(ctx, groupOrderID)
}

// lockActive locks the group order row and verifies it still accepts changes,
// persisting lazy expiry when the deadline has passed.
func (s *service) lockActive(ctx context.Context, repo Repository, groupOrderID uuid.UUID) (*models.GroupOrder, error) {
	groupOrder, err := repo.FindByIDForUpdate(ctx, groupOrderID)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if effectiveStatus(groupOrder, s.now()) != enums.GroupOrderStatusActive {
		return nil, s.markExpiredLocked(ctx, repo, groupOrder)
	}
	return groupOrder, nil
}

// markExpiredLocked persists lazy expiry for a locked row, then reports the
// state error. A non-active order that is not expired just reports the error.
func (s *service) markExpiredLocked(ctx context.Context, repo Repository, groupOrder *models.GroupOrder) error {
	if groupOrder.Status == enums.GroupOrderStatusActive && s.now().After(groupOrder.ExpiresAt) {
		if err := repo.Update(ctx, groupOrder.ID, map[string]any{
			"status": enums.GroupOrderStatusExpired.String(),
		}); err != nil {
			return err
		}
	}
	return ErrNotAcceptingParticipants
}

func (s *service) findParticipant(ctx context.Context, repo Repository, groupOrderID, userID uuid.UUID) (*models.GroupOrderParticipant, []models.GroupOrderParticipant, error) {
	participants, err := repo.ListParticipants(ctx, groupOrderID)
	if err != nil {
		return nil, nil, err
	}
	for i := range participants {
		if participants[i].UserID == userID {
			return &participants[i], participants, nil
		}
	}
	return nil, nil, ErrForbidden
}

// repriceLocked re-sums contributions across all participants and applies the
// discount policy. Totals are always recomputed from scratch, never
// incremented, so concurrent retries converge on the same numbers.
func (s *service) repriceLocked(ctx context.Context, repo Repository, groupOrderID uuid.UUID, participants []models.GroupOrderParticipant) error {
	total := 0
	for _, p := range participants {
		total += p.Items.Sum()
	}
	quote := Discount(len(participants))
	discountAmount, finalAmount := ApplyDiscount(total, quote.Percentage)

	return repo.Update(ctx, groupOrderID, map[string]any{
		"total_amount":        total,
		"discount_percentage": quote.Percentage,
		"discount_amount":     discountAmount,
		"final_amount":        finalAmount,
	})
}

func (s *service) load(ctx context.Context, groupOrderID uuid.UUID) (*models.GroupOrder, error) {
	if groupOrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "group order id required")
	}
	groupOrder, err := s.repo.FindByID(ctx, groupOrderID)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading group order")
	}
	return groupOrder, nil
}

func (s *service) detail(groupOrder *models.GroupOrder, participants []models.GroupOrderParticipant) *GroupOrderDetail {
	views := make([]ParticipantView, 0, len(participants))
	for _, p := range participants {
		views = append(views, ParticipantView{
			UserID:             p.UserID,
			UserName:           p.UserName,
			UserInitials:       p.UserInitials,
			UserColor:          p.UserColor,
			Position:           p.Position,
			Items:              p.Items,
			TotalContribution:  p.TotalContribution,
			BudgetContribution: p.BudgetContribution,
			SelectionStatus:    p.SelectionStatus,
			JoinedAt:           p.JoinedAt,
		})
	}

	return &GroupOrderDetail{
		ID:                 groupOrder.ID,
		Code:               groupOrder.Code,
		Title:              groupOrder.Title,
		RestaurantName:     groupOrder.RestaurantName,
		ChefID:             groupOrder.ChefID,
		CreatedBy:          groupOrder.CreatedBy,
		Status:             effectiveStatus(groupOrder, s.now()),
		SelectionPhase:     groupOrder.SelectionPhase,
		InitialBudget:      groupOrder.InitialBudget,
		TotalBudget:        groupOrder.TotalBudget,
		TotalAmount:        groupOrder.TotalAmount,
		DiscountPercentage: groupOrder.DiscountPercentage,
		DiscountAmount:     groupOrder.DiscountAmount,
		FinalAmount:        groupOrder.FinalAmount,
		DeliveryAddress:    groupOrder.DeliveryAddress,
		DeliveryTime:       groupOrder.DeliveryTime,
		ShareToken:         groupOrder.ShareToken,
		ShareLink:          fmt.Sprintf("%s/group-order/%s", strings.TrimRight(s.cfg.ShareBaseURL, "/"), groupOrder.ShareToken),
		ExpiresAt:          groupOrder.ExpiresAt,
		ClosedAt:           groupOrder.ClosedAt,
		MainOrderID:        groupOrder.MainOrderID,
		Participants:       views,
		CreatedAt:          groupOrder.CreatedAt,
	}
}

// effectiveStatus folds lazy expiry into the stored status.
func effectiveStatus(groupOrder *models.GroupOrder, now time.Time) enums.GroupOrderStatus {
	if groupOrder.Status == enums.GroupOrderStatusActive && now.After(groupOrder.ExpiresAt) {
		return enums.GroupOrderStatusExpired
	}
	return groupOrder.Status
}

func flattenLineItems(orderID uuid.UUID, participants []models.GroupOrderParticipant) []models.OrderLineItem {
	var items []models.OrderLineItem
	for _, p := range participants {
		userID := p.UserID
		for _, item := range p.Items {
			items = append(items, models.OrderLineItem{
				ID:                  uuid.New(),
				OrderID:             orderID,
				DishID:              item.DishID,
				Name:                item.Name,
				Quantity:            item.Quantity,
				UnitPrice:           item.UnitPrice,
				Total:               item.Total(),
				SpecialInstructions: item.SpecialInstructions,
				ParticipantUserID:   &userID,
			})
		}
	}
	return items
}
