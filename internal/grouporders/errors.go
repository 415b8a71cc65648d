package grouporders

import pkgerrors "github.com/cribnosh/nosh-backend/pkg/errors"

// Sentinel errors returned by the lifecycle service. Callers distinguish them
// with errors.Is; the embedded codes drive the HTTP mapping.
var (
	ErrNotFound                 = pkgerrors.New(pkgerrors.CodeNotFound, "group order not found")
	ErrNotAcceptingParticipants = pkgerrors.New(pkgerrors.CodeStateConflict, "group order is not accepting participants")
	ErrAlreadyJoined            = pkgerrors.New(pkgerrors.CodeConflict, "user has already joined this group order")
	ErrForbidden                = pkgerrors.New(pkgerrors.CodeForbidden, "only the group order creator can do this")
	ErrEmptyGroupOrder          = pkgerrors.New(pkgerrors.CodeStateConflict, "group order has no participants")
)
