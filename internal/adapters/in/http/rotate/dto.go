package rotate

import (
	"time"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

// MessageResponse is returned by a successful rotation.
type MessageResponse struct {
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}

// ErrorResponse is returned for every rejected or failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HopStatus describes one active hop.
type HopStatus struct {
	Name      string `json:"name"`
	Interface string `json:"interface"`
	Address   string `json:"address"`
}

// StatusResponse is the read-only chain snapshot served by /status.
type StatusResponse struct {
	State        string      `json:"state"`
	Hops         []HopStatus `json:"hops"`
	Routes       []string    `json:"routes"`
	ForwardRules []string    `json:"forward_rules"`
	Fastest      bool        `json:"fastest"`
	BuiltAt      *time.Time  `json:"built_at,omitempty"`
}

func newStatusResponse(c domain.Chain) StatusResponse {
	resp := StatusResponse{
		State:        string(c.State),
		Hops:         make([]HopStatus, 0, len(c.Hops)),
		Routes:       make([]string, 0, len(c.Routes)),
		ForwardRules: make([]string, 0, len(c.ForwardRules)),
		Fastest:      c.Request.RankBySpeed,
	}
	for _, hop := range c.Hops {
		resp.Hops = append(resp.Hops, HopStatus{
			Name:      hop.Name,
			Interface: hop.Interface,
			Address:   hop.Address.String(),
		})
	}
	for _, route := range c.InstalledRoutes() {
		resp.Routes = append(resp.Routes, route.String())
	}
	for _, rule := range c.ForwardRules {
		resp.ForwardRules = append(resp.ForwardRules, rule.From+" -> "+rule.To)
	}
	if !c.BuiltAt.IsZero() {
		builtAt := c.BuiltAt.UTC()
		resp.BuiltAt = &builtAt
	}
	return resp
}
