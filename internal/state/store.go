package state

import (
	"fmt"

	"botdash/internal/api"
)

// Resource is one of the independently fetched read-only collections.
type Resource int

const (
	ResourceStats Resource = iota
	ResourceUsers
	ResourceReferrals

	resourceCount = iota
)

// Resources returns every resource in fetch order.
func Resources() []Resource {
	return []Resource{ResourceStats, ResourceUsers, ResourceReferrals}
}

func (r Resource) String() string {
	switch r {
	case ResourceStats:
		return "stats"
	case ResourceUsers:
		return "users"
	case ResourceReferrals:
		return "referrals"
	default:
		return fmt.Sprintf("Resource(%d)", int(r))
	}
}

// ApplyResult tells what Store.Apply did with a ResourceLoaded event.
type ApplyResult int

const (
	// Applied means the resource was replaced with the fetched value.
	Applied ApplyResult = iota
	// Failed means the fetch failed; the previous value was kept.
	Failed
	// Stale means a newer request had been issued; the response was dropped.
	Stale
)

func (a ApplyResult) String() string {
	switch a {
	case Applied:
		return "applied"
	case Failed:
		return "failed"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// Store holds the three resource snapshots. A nil field means the resource
// has never been fetched successfully.
type Store struct {
	Stats     *api.StatsSnapshot
	Users     *api.UsersResponse
	Referrals *api.ReferralsResponse

	loading bool
	issued  [resourceCount]uint64
	settled [resourceCount]uint64
}

// NewStore returns a store in its initial loading state.
func NewStore() *Store {
	return &Store{loading: true}
}

// Loading reports whether no fetch has settled yet.
func (s *Store) Loading() bool { return s.loading }

// Issue allocates the next generation for r. The returned number must travel
// with the request and come back in its ResourceLoaded event.
func (s *Store) Issue(r Resource) uint64 {
	s.issued[r]++
	return s.issued[r]
}

// InFlight reports whether the latest request of any resource has not
// settled yet.
func (s *Store) InFlight() bool {
	return s.issued != s.settled
}

// Apply settles a fetch. The loading flag clears on the first settle of any
// resource, whatever its result. A response is applied only if its
// generation is the latest issued for the resource; a failed fetch never
// touches the stored value.
func (s *Store) Apply(ev ResourceLoaded) ApplyResult {
	s.loading = false

	if ev.Resource < 0 || ev.Resource >= resourceCount {
		return Failed
	}
	if ev.Generation != s.issued[ev.Resource] {
		return Stale
	}
	s.settled[ev.Resource] = ev.Generation
	if ev.Err != nil {
		return Failed
	}

	switch ev.Resource {
	case ResourceStats:
		if ev.Stats == nil {
			return Failed
		}
		s.Stats = ev.Stats
	case ResourceUsers:
		if ev.Users == nil {
			return Failed
		}
		s.Users = ev.Users
	case ResourceReferrals:
		if ev.Referrals == nil {
			return Failed
		}
		s.Referrals = ev.Referrals
	}
	return Applied
}
