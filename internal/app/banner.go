package app

import (
	"net"
	"net/netip"
	"net/url"
)

// firstIPv4 returns the first non-loopback IPv4 address in addrs.
func firstIPv4(addrs []net.Addr) (netip.Addr, bool) {
	for _, a := range addrs {
		var ip net.IP
		switch v := a.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		default:
			continue
		}
		addr, ok := netip.AddrFromSlice(ip)
		if !ok {
			continue
		}
		addr = addr.Unmap()
		if addr.Is4() && !addr.IsLoopback() {
			return addr, true
		}
	}
	return netip.Addr{}, false
}

// hostIPv4 returns the address operators reach the API on, or loopback when
// the host has no other IPv4 address.
func hostIPv4() string {
	addrs, err := net.InterfaceAddrs()
	if err == nil {
		if addr, ok := firstIPv4(addrs); ok {
			return addr.String()
		}
	}
	return "127.0.0.1"
}

// rotationURL builds the URL printed at startup.
func rotationURL(host, listen, token string) string {
	port := "5000"
	if _, p, err := net.SplitHostPort(listen); err == nil && p != "" {
		port = p
	}
	u := url.URL{
		Scheme:   "http",
		Host:     net.JoinHostPort(host, port),
		Path:     "/rotate_vpn",
		RawQuery: url.Values{"key": {token}}.Encode(),
	}
	return u.String()
}
