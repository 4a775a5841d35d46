package filesystem

import (
	"context"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

const definitionTmpl = `[Interface]
PrivateKey = yAnz5TF+lXXJte14tji3zlMNq+hd2rYUIgJBgB3fBmk=
Address = %s
DNS = 10.64.0.1

[Peer]
PublicKey = xTIBA5rboUvnH4htodjb6e697QjLERt1NAB4mZqp8Dg=
AllowedIPs = 0.0.0.0/0, ::/0
Endpoint = 185.65.135.1:51820

[Peer]
PublicKey = TrMvSoP4jYQlY6RIzBgbssQqY3vxI2Pi+y71lOWWXX0=
AllowedIPs = 10.200.0.0/16
Endpoint = 185.65.135.2:51820
`

func writeDefinition(t *testing.T, dir, name, address string) string {
	t.Helper()
	path := filepath.Join(dir, name+".conf")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(definitionTmpl, address)), 0o600))
	return path
}

func TestEndpointRepository_List(t *testing.T) {
	dir := t.TempDir()
	for i := 5; i >= 1; i-- {
		writeDefinition(t, dir, fmt.Sprintf("vpn-%02d", i), fmt.Sprintf("10.0.%d.1/24", i))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("not a definition"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.conf"), 0o700))

	repo := NewEndpointRepository(dir, zerolog.Nop())
	endpoints, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, endpoints, 5)

	assert.Equal(t, []string{"vpn-01", "vpn-02", "vpn-03", "vpn-04", "vpn-05"}, domain.EndpointNames(endpoints))

	first := endpoints[0]
	assert.Equal(t, "vpn-01", first.Interface)
	assert.Equal(t, netip.MustParsePrefix("10.0.1.1/24"), first.Address)
	assert.Equal(t, netip.MustParsePrefix("10.0.1.0/24"), first.Network())
	assert.Equal(t, filepath.Join(dir, "vpn-01.conf"), first.Path)
}

func TestEndpointRepository_ListSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "good", "10.0.1.1/24")
	writeDefinition(t, dir, "bad-address", "not-an-ip")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "no-address.conf"), []byte("[Interface]\nPrivateKey = abc=\n"), 0o600))

	repo := NewEndpointRepository(dir, zerolog.Nop())
	endpoints, err := repo.List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParse)
	assert.Contains(t, err.Error(), "bad-address.conf")
	assert.Contains(t, err.Error(), "no-address.conf")

	require.Len(t, endpoints, 1)
	assert.Equal(t, "good", endpoints[0].Name)
}

func TestEndpointRepository_MissingDir(t *testing.T) {
	repo := NewEndpointRepository(filepath.Join(t.TempDir(), "missing"), zerolog.Nop())
	endpoints, err := repo.List(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConfigParse)
	assert.Empty(t, endpoints)
}

func TestParseAddressLine(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "single ipv4", value: "10.0.2.1/24", want: "10.0.2.1/24"},
		{name: "ipv4 preferred", value: "fd00::2/128, 10.66.0.2/32", want: "10.66.0.2/32"},
		{name: "ipv6 only", value: "fd00::2/64", want: "fd00::2/64"},
		{name: "bare address", value: "10.9.0.3", want: "10.9.0.3/32"},
		{name: "trailing comment", value: "10.0.1.1/24 # home", want: "10.0.1.1/24"},
		{name: "comment only", value: "# unset", wantErr: true},
		{name: "empty", value: " , ", wantErr: true},
		{name: "garbage", value: "10.0.0.300/24", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAddressLine(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseDefinition_InlineComment(t *testing.T) {
	path := writeDefinition(t, t.TempDir(), "vpn-07", "10.0.7.1/24, fd00::7/64 # home exit")

	ep, err := ParseDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "vpn-07", ep.Name)
	assert.Equal(t, netip.MustParsePrefix("10.0.7.1/24"), ep.Address)
}

func TestParseDefinition_MissingInterface(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peer-only.conf")
	require.NoError(t, os.WriteFile(path, []byte("[Peer]\nPublicKey = abc=\n"), 0o600))

	_, err := ParseDefinition(path)
	var parseErr *domain.ConfigParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Contains(t, parseErr.Reason, "Interface")
}
