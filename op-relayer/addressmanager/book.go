package addressmanager

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"

	opservice "github.com/mantlenetworkio/mantle-relayer/op-service"
)

// addressBook is the on-disk form of a registry:
//
//	owner = "0x..."
//	[addresses]
//	OVM_L1CrossDomainMessenger = "0x..."
type addressBook struct {
	Owner     string            `toml:"owner,omitempty"`
	Addresses map[string]string `toml:"addresses"`
}

// LoadAddressBook reads a TOML address book into a new AddressManager.
func LoadAddressBook(path string) (*AddressManager, error) {
	var book addressBook
	md, err := toml.DecodeFile(path, &book)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("address book %s does not exist", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to decode address book %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in address book %s: %v", path, undecoded)
	}
	return book.build()
}

// DecodeAddressBook parses TOML address book contents.
func DecodeAddressBook(data string) (*AddressManager, error) {
	var book addressBook
	if _, err := toml.Decode(data, &book); err != nil {
		return nil, fmt.Errorf("failed to decode address book: %w", err)
	}
	return book.build()
}

func (b *addressBook) build() (*AddressManager, error) {
	var owner common.Address
	if b.Owner != "" {
		var err error
		if owner, err = opservice.ParseAddress(b.Owner); err != nil {
			return nil, fmt.Errorf("owner: %w", err)
		}
	}
	m := New(owner)
	names := make([]string, 0, len(b.Addresses))
	for name := range b.Addresses {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		addr, err := opservice.ParseAddress(b.Addresses[name])
		if err != nil {
			return nil, fmt.Errorf("address of %s: %w", name, err)
		}
		if err := m.SetAddress(owner, name, addr); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Encode writes the registry back out in address book form.
func (m *AddressManager) Encode() (string, error) {
	book := addressBook{Addresses: make(map[string]string)}
	if owner := m.Owner(); owner != (common.Address{}) {
		book.Owner = owner.Hex()
	}
	for _, e := range m.Entries() {
		book.Addresses[e.Name] = e.NewAddress.Hex()
	}
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(book); err != nil {
		return "", err
	}
	return buf.String(), nil
}
