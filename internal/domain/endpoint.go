package domain

import "net/netip"

// EndpointConfig is one tunnel endpoint definition discovered on disk.
// Values are immutable once loaded by the repository.
type EndpointConfig struct {
	// Name is the definition file stem (e.g. "se-sto-01" for se-sto-01.conf).
	Name string
	// Interface is the network interface wg-quick creates for the definition.
	// wg-quick names it after the file stem.
	Interface string
	// Address is the local address declared by the definition's Address line.
	Address netip.Prefix
	// Path is the definition handle passed to the activation mechanism.
	Path string
}

// Network returns the masked address block of the endpoint, e.g. 10.0.2.0/24
// for an endpoint declaring 10.0.2.1/24.
func (e EndpointConfig) Network() netip.Prefix {
	return e.Address.Masked()
}

// RankedEndpoint pairs an endpoint with a measured throughput in Mbps.
// A failed measurement scores 0.
type RankedEndpoint struct {
	Endpoint EndpointConfig
	Mbps     float64
}

// EndpointNames returns the names of the given endpoints in order.
func EndpointNames(endpoints []EndpointConfig) []string {
	names := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		names = append(names, ep.Name)
	}
	return names
}
