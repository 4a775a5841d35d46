// Package filesystem reads tunnel definitions and hook scripts from disk.
package filesystem

import (
	"context"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

// DefinitionExt is the file extension of tunnel definitions.
const DefinitionExt = ".conf"

// EndpointRepository implements out.EndpointRepository over a directory of
// WireGuard definitions.
type EndpointRepository struct {
	dir string
	log zerolog.Logger
}

// NewEndpointRepository creates a repository reading *.conf files from dir.
func NewEndpointRepository(dir string, log zerolog.Logger) *EndpointRepository {
	return &EndpointRepository{
		dir: dir,
		log: log,
	}
}

// List returns every parseable definition in lexical file name order.
// Definitions that fail to parse are left out and reported together in the
// returned error, alongside the endpoints that did parse. A directory that
// cannot be read yields no endpoints and a plain error.
func (r *EndpointRepository) List(ctx context.Context) ([]domain.EndpointConfig, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read tunnel definition directory %s: %w", r.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), DefinitionExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var (
		endpoints []domain.EndpointConfig
		parseErrs *multierror.Error
	)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ep, err := ParseDefinition(filepath.Join(r.dir, name))
		if err != nil {
			parseErrs = multierror.Append(parseErrs, err)
			continue
		}
		endpoints = append(endpoints, ep)
	}

	r.log.Debug().
		Str(logger.FieldLayer, "adapter").
		Str(logger.FieldAdapter, "filesystem").
		Str("dir", r.dir).
		Int(logger.FieldCount, len(endpoints)).
		Int("invalid", len(parseErrs.WrappedErrors())).
		Msg("tunnel definitions listed")

	return endpoints, parseErrs.ErrorOrNil()
}

// ParseDefinition reads one WireGuard definition and extracts its local
// address. The endpoint and interface are named after the file stem, which
// is how wg-quick names the interface it creates.
func ParseDefinition(path string) (domain.EndpointConfig, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:             true,
		AllowNonUniqueSections:  true,
		AllowShadows:            true,
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
		KeyValueDelimiters:      "=",
	}, path)
	if err != nil {
		return domain.EndpointConfig{}, &domain.ConfigParseError{Path: path, Reason: "unreadable definition", Err: err}
	}

	section, err := cfg.GetSection("interface")
	if err != nil {
		return domain.EndpointConfig{}, &domain.ConfigParseError{Path: path, Reason: "missing [Interface] section"}
	}
	if !section.HasKey("address") {
		return domain.EndpointConfig{}, &domain.ConfigParseError{Path: path, Reason: "missing Address line"}
	}

	addr, err := parseAddressLine(section.Key("address").String())
	if err != nil {
		return domain.EndpointConfig{}, &domain.ConfigParseError{Path: path, Reason: "invalid Address line", Err: err}
	}

	stem := strings.TrimSuffix(filepath.Base(path), DefinitionExt)
	return domain.EndpointConfig{
		Name:      stem,
		Interface: stem,
		Address:   addr,
		Path:      path,
	}, nil
}

// parseAddressLine picks the first IPv4 prefix of a comma separated Address
// value, or the first prefix when none is IPv4. A bare address is taken as a
// single host prefix. Anything after '#' is a comment, as wg-quick reads it.
func parseAddressLine(value string) (netip.Prefix, error) {
	if i := strings.IndexByte(value, '#'); i >= 0 {
		value = value[:i]
	}
	var first netip.Prefix
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		prefix, err := parsePrefix(field)
		if err != nil {
			return netip.Prefix{}, err
		}
		if prefix.Addr().Is4() {
			return prefix, nil
		}
		if !first.IsValid() {
			first = prefix
		}
	}
	if !first.IsValid() {
		return netip.Prefix{}, fmt.Errorf("no address in %q", value)
	}
	return first, nil
}

func parsePrefix(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		return netip.ParsePrefix(s)
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}
