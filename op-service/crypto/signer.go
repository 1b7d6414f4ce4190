package crypto

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	hdwallet "github.com/ethereum-optimism/go-ethereum-hdwallet"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
)

// SignerFn signs a transaction for the given from address.
type SignerFn func(context.Context, common.Address, *types.Transaction) (*types.Transaction, error)

// SignerFactory creates a SignerFn that is bound to a specific chain ID.
type SignerFactory func(chainID *big.Int) SignerFn

// PrivateKeySignerFn returns a SignerFn that signs with the given key for the given chain.
func PrivateKeySignerFn(key *ecdsa.PrivateKey, chainID *big.Int) bind.SignerFn {
	from := crypto.PubkeyToAddress(key.PublicKey)
	signer := types.LatestSignerForChainID(chainID)
	return func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
		if address != from {
			return nil, bind.ErrNotAuthorized
		}
		signature, err := crypto.Sign(signer.Hash(tx).Bytes(), key)
		if err != nil {
			return nil, err
		}
		return tx.WithSignature(signer, signature)
	}
}

// KeyFromConfig resolves the signing key from either a hex private key or a
// mnemonic plus HD path. Exactly one of the two must be configured.
func KeyFromConfig(privateKey, mnemonic, hdPath string) (*ecdsa.PrivateKey, error) {
	switch {
	case privateKey != "" && mnemonic != "":
		return nil, errors.New("cannot specify both a private key and a mnemonic")
	case privateKey != "":
		key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		return key, nil
	case mnemonic != "":
		if hdPath == "" {
			return nil, errors.New("must specify an HD path together with the mnemonic")
		}
		return DerivePrivateKey(mnemonic, hdPath)
	default:
		return nil, errors.New("no signing key configured")
	}
}

// DerivePrivateKey derives the key at hdPath from a BIP-39 mnemonic.
func DerivePrivateKey(mnemonic, hdPath string) (*ecdsa.PrivateKey, error) {
	w, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	if _, err := accounts.ParseDerivationPath(hdPath); err != nil {
		return nil, fmt.Errorf("invalid hd path %q: %w", hdPath, err)
	}
	account := accounts.Account{URL: accounts.URL{Path: hdPath}}
	priv, err := w.PrivateKey(account)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key of path %s: %w", hdPath, err)
	}
	return priv, nil
}

// SignerFactoryFromConfig builds a SignerFactory and the matching sender address.
func SignerFactoryFromConfig(l log.Logger, privateKey, mnemonic, hdPath string) (SignerFactory, common.Address, error) {
	key, err := KeyFromConfig(privateKey, mnemonic, hdPath)
	if err != nil {
		return nil, common.Address{}, err
	}
	from := crypto.PubkeyToAddress(key.PublicKey)
	l.Info("Loaded signing key", "address", from)
	return func(chainID *big.Int) SignerFn {
		s := PrivateKeySignerFn(key, chainID)
		return func(_ context.Context, addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return s(addr, tx)
		}
	}, from, nil
}
