// Package policy decides which owners' rows a session may observe or mutate.
//
// The policy is an explicit value: given a principal, an entity kind and an
// operation it returns either a [Scope] or [ErrForbidden]. Store calls take the
// owner set from the returned scope, never from the request body.
package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/hcorbage/corb3d/models"
)

// ErrForbidden is returned when the principal may not perform the operation at all.
var ErrForbidden = errors.New("forbidden by access policy")

// Kind enumerates the tenant-scoped entity kinds plus users.
type Kind int

const (
	Client Kind = iota
	Material
	StockItem
	Settings
	Employee
	Calculation
	User
)

func (k Kind) String() string {
	switch k {
	case Client:
		return "client"
	case Material:
		return "material"
	case StockItem:
		return "stock_item"
	case Settings:
		return "settings"
	case Employee:
		return "employee"
	case Calculation:
		return "calculation"
	case User:
		return "user"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Operation is either a read or a write.
type Operation int

const (
	Read Operation = iota
	Write
)

// Principal is the authenticated caller as seen by the policy.
type Principal struct {
	UserID        string
	IsAdmin       bool
	IsMasterAdmin bool
}

// FromSession builds a principal from a stored session.
func FromSession(s models.Session) Principal {
	return Principal{UserID: s.UserID, IsAdmin: s.IsAdmin, IsMasterAdmin: s.IsMasterAdmin}
}

// Scope is the row set a request may touch.
//
// Owners lists the owner ids whose rows are in scope; the first entry is
// always the caller, which is also the owner of any row it creates.
// LinkedUserID, when set, narrows employee reads to the single employee linked
// to that user instead of filtering by owner.
type Scope struct {
	Owners       []string
	LinkedUserID string
}

// Owner returns the owner id of rows created under this scope.
func (s Scope) Owner() string {
	if len(s.Owners) == 0 {
		return ""
	}
	return s.Owners[0]
}

// Contains reports whether ownerID is in scope.
func (s Scope) Contains(ownerID string) bool {
	for _, o := range s.Owners {
		if o == ownerID {
			return true
		}
	}
	return false
}

// LinkedUsers resolves the companion user ids of the employees owned by an admin.
type LinkedUsers interface {
	LinkedUserIDs(ctx context.Context, ownerID string) ([]string, error)
}

// Policy evaluates access decisions.
type Policy struct {
	linked LinkedUsers
}

// New returns a policy that resolves quote fan-out through linked.
func New(linked LinkedUsers) *Policy {
	return &Policy{linked: linked}
}

// Scope returns the scope of op on kind for p, or [ErrForbidden].
func (pol *Policy) Scope(ctx context.Context, p Principal, kind Kind, op Operation) (Scope, error) {
	if p.UserID == "" {
		return Scope{}, ErrForbidden
	}
	self := Scope{Owners: []string{p.UserID}}

	switch kind {
	case Client, Material, StockItem:
		if op == Read && !p.IsAdmin {
			return Scope{}, ErrForbidden
		}
		return self, nil

	case Settings:
		return self, nil

	case Employee:
		if op == Write {
			if !p.IsMasterAdmin {
				return Scope{}, ErrForbidden
			}
			return self, nil
		}
		if p.IsAdmin {
			return self, nil
		}
		return Scope{LinkedUserID: p.UserID}, nil

	case Calculation:
		if !p.IsAdmin {
			return self, nil
		}
		return pol.fanOut(ctx, p.UserID)

	case User:
		if !p.IsMasterAdmin {
			return Scope{}, ErrForbidden
		}
		return self, nil
	}

	return Scope{}, fmt.Errorf("%w: unknown entity kind %s", ErrForbidden, kind)
}

// fanOut returns {admin} ∪ {linked users of the admin's employees}.
func (pol *Policy) fanOut(ctx context.Context, adminID string) (Scope, error) {
	scope := Scope{Owners: []string{adminID}}
	if pol.linked == nil {
		return scope, nil
	}

	linked, err := pol.linked.LinkedUserIDs(ctx, adminID)
	if err != nil {
		return Scope{}, fmt.Errorf("resolving linked users: %w", err)
	}

	seen := map[string]struct{}{adminID: {}}
	for _, id := range linked {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		scope.Owners = append(scope.Owners, id)
	}

	return scope, nil
}
