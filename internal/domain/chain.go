package domain

import (
	"net/netip"
	"time"
)

// ChainState is the lifecycle state of the orchestrated chain.
type ChainState string

const (
	ChainStateEmpty       ChainState = "empty"
	ChainStateBuilding    ChainState = "building"
	ChainStateActive      ChainState = "active"
	ChainStateTearingDown ChainState = "tearing_down"
	// ChainStatePartial marks a build that failed after some hops came up.
	// Hops already activated are left in place for the operator to inspect.
	ChainStatePartial ChainState = "partial"
)

// RouteKey identifies an inter-hop route installed on the host.
// The zero value means no route was installed for the hop.
type RouteKey struct {
	Destination netip.Prefix
	Via         netip.Addr
	Device      string
}

// Installed reports whether the key refers to an installed route.
func (k RouteKey) Installed() bool {
	return k.Destination.IsValid()
}

// String renders the key in `ip route` argument order.
func (k RouteKey) String() string {
	if !k.Installed() {
		return ""
	}
	return k.Destination.String() + " via " + k.Via.String() + " dev " + k.Device
}

// ForwardRule permits forwarding from one hop interface to the next.
type ForwardRule struct {
	From string
	To   string
}

// ChainRequest holds the parameters a chain was built with.
// Rotation rebuilds with the parameters of the last build.
type ChainRequest struct {
	Hops        int
	RankBySpeed bool
}

// Chain is the orchestration state owned by the chain service.
//
// Hops and Routes are parallel: Routes[i] is the route installed when hop i
// came up, and the zero RouteKey for hop 0. len(Routes) == len(Hops) holds
// after every step of a build.
type Chain struct {
	State        ChainState
	Request      ChainRequest
	Hops         []EndpointConfig
	Routes       []RouteKey
	ForwardRules []ForwardRule
	BuiltAt      time.Time
}

// InstalledRoutes returns the routes that were actually installed.
func (c Chain) InstalledRoutes() []RouteKey {
	routes := make([]RouteKey, 0, len(c.Routes))
	for _, r := range c.Routes {
		if r.Installed() {
			routes = append(routes, r)
		}
	}
	return routes
}

// Clone returns a deep copy so callers can read a snapshot without holding locks.
func (c Chain) Clone() Chain {
	out := c
	out.Hops = append([]EndpointConfig(nil), c.Hops...)
	out.Routes = append([]RouteKey(nil), c.Routes...)
	out.ForwardRules = append([]ForwardRule(nil), c.ForwardRules...)
	return out
}

// Empty reports whether no hop is recorded.
func (c Chain) Empty() bool {
	return len(c.Hops) == 0
}
