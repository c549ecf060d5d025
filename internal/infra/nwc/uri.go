package nwc

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gabapcia/zapland/internal/pkg/validator"
)

// ErrInvalidConnectionURI is returned when a connection secret is not a
// well-formed Nostr Wallet Connect URI.
var ErrInvalidConnectionURI = errors.New("invalid nostr wallet connect uri")

// Accepted URI schemes. The second form predates the NIP-47 rename.
var schemes = []string{"nostr+walletconnect", "nostrwalletconnect"}

// ConnectionURI is a parsed Nostr Wallet Connect credential:
//
//	nostr+walletconnect://<wallet pubkey>?relay=<wss url>&secret=<hex>[&lud16=<address>]
type ConnectionURI struct {
	WalletPubkey     string   `validate:"required,hexadecimal,len=64"`
	Relays           []string `validate:"required,min=1,dive,wsurl"`
	Secret           string   `validate:"required,hexadecimal,len=64"`
	LightningAddress string   `validate:"omitempty,lnaddress"`
}

// ParseConnectionURI parses and validates a connection secret.
func ParseConnectionURI(raw string) (ConnectionURI, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ConnectionURI{}, fmt.Errorf("%w: %w", ErrInvalidConnectionURI, err)
	}

	if !isKnownScheme(u.Scheme) {
		return ConnectionURI{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidConnectionURI, u.Scheme)
	}

	// "scheme://pubkey?..." puts the key in Host, "scheme:pubkey?..." in Opaque.
	pubkey := u.Host
	if pubkey == "" {
		pubkey = u.Opaque
	}

	query := u.Query()
	uri := ConnectionURI{
		WalletPubkey:     strings.ToLower(pubkey),
		Relays:           query["relay"],
		Secret:           query.Get("secret"),
		LightningAddress: query.Get("lud16"),
	}

	if err := validator.Validate(uri); err != nil {
		return ConnectionURI{}, fmt.Errorf("%w: %w", ErrInvalidConnectionURI, err)
	}

	return uri, nil
}

func isKnownScheme(scheme string) bool {
	for _, s := range schemes {
		if strings.EqualFold(scheme, s) {
			return true
		}
	}
	return false
}
