package app

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstIPv4(t *testing.T) {
	cidr := func(s string) net.Addr {
		ip, ipNet, err := net.ParseCIDR(s)
		if err != nil {
			t.Fatal(err)
		}
		ipNet.IP = ip
		return ipNet
	}

	tests := []struct {
		name  string
		addrs []net.Addr
		want  string
		found bool
	}{
		{
			name:  "skips loopback and v6",
			addrs: []net.Addr{cidr("127.0.0.1/8"), cidr("fe80::1/64"), cidr("192.168.1.20/24"), cidr("10.0.0.5/8")},
			want:  "192.168.1.20",
			found: true,
		},
		{
			name:  "ip addr form",
			addrs: []net.Addr{&net.IPAddr{IP: net.ParseIP("203.0.113.7")}},
			want:  "203.0.113.7",
			found: true,
		},
		{
			name:  "loopback only",
			addrs: []net.Addr{cidr("127.0.0.1/8"), cidr("::1/128")},
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := firstIPv4(tt.addrs)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestRotationURL(t *testing.T) {
	assert.Equal(t, "http://192.168.1.20:5000/rotate_vpn?key=abc-123",
		rotationURL("192.168.1.20", "0.0.0.0:5000", "abc-123"))
	assert.Equal(t, "http://10.0.0.1:8080/rotate_vpn?key=abc",
		rotationURL("10.0.0.1", ":8080", "abc"))
	assert.Equal(t, "http://10.0.0.1:5000/rotate_vpn?key=abc",
		rotationURL("10.0.0.1", "garbage", "abc"))
}
