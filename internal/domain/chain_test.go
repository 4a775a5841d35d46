package domain

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteKey(t *testing.T) {
	var zero RouteKey
	assert.False(t, zero.Installed())
	assert.Empty(t, zero.String())

	key := RouteKey{
		Destination: netip.MustParsePrefix("10.0.2.0/24"),
		Via:         netip.MustParseAddr("10.0.1.1"),
		Device:      "se-sto",
	}
	assert.True(t, key.Installed())
	assert.Equal(t, "10.0.2.0/24 via 10.0.1.1 dev se-sto", key.String())
}

func TestChain_InstalledRoutes(t *testing.T) {
	installed := RouteKey{
		Destination: netip.MustParsePrefix("10.0.2.0/24"),
		Via:         netip.MustParseAddr("10.0.1.1"),
		Device:      "a",
	}
	c := Chain{Routes: []RouteKey{{}, installed, {}}}

	assert.Equal(t, []RouteKey{installed}, c.InstalledRoutes())
	assert.Empty(t, Chain{}.InstalledRoutes())
}

func TestChain_Clone(t *testing.T) {
	c := Chain{
		State:        ChainStateActive,
		Hops:         []EndpointConfig{{Name: "a"}, {Name: "b"}},
		Routes:       []RouteKey{{}, {Device: "a"}},
		ForwardRules: []ForwardRule{{From: "a", To: "b"}},
	}

	clone := c.Clone()
	clone.Hops[0].Name = "changed"
	clone.Routes[1].Device = "changed"
	clone.ForwardRules[0].To = "changed"

	assert.Equal(t, "a", c.Hops[0].Name)
	assert.Equal(t, "a", c.Routes[1].Device)
	assert.Equal(t, "b", c.ForwardRules[0].To)
	assert.False(t, c.Empty())
	assert.True(t, Chain{}.Empty())
}

func TestEndpointConfig_Network(t *testing.T) {
	ep := EndpointConfig{Address: netip.MustParsePrefix("10.0.2.1/24")}
	assert.Equal(t, netip.MustParsePrefix("10.0.2.0/24"), ep.Network())

	host := EndpointConfig{Address: netip.MustParsePrefix("10.64.0.7/32")}
	assert.Equal(t, netip.MustParsePrefix("10.64.0.7/32"), host.Network())
}

func TestEndpointNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, EndpointNames([]EndpointConfig{{Name: "a"}, {Name: "b"}}))
	assert.Empty(t, EndpointNames(nil))
}

func TestHookName(t *testing.T) {
	for _, name := range HookNames {
		assert.True(t, name.Valid(), name)
	}
	assert.False(t, HookName("pre-build").Valid())
	assert.Equal(t, "post-spin-down.sh", HookPostSpinDown.ScriptName())
}
