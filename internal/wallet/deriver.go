// Package wallet derives watch-only addresses from an account-level
// extended public key.
package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/walletsync7000/internal/model"
)

// AddressFormat selects the script type of derived addresses.
type AddressFormat string

const (
	FormatP2WPKH AddressFormat = "p2wpkh"
	FormatP2PKH  AddressFormat = "p2pkh"
)

// Deriver derives branch/index addresses from an account extended
// public key. It never holds private key material.
type Deriver struct {
	params   *chaincfg.Params
	format   AddressFormat
	branches map[model.Branch]*hdkeychain.ExtendedKey
}

// NewDeriver parses the xpub, checks it against the network and
// precomputes the receive and change branch keys.
func NewDeriver(xpub string, network model.Network, format AddressFormat) (*Deriver, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	if format != FormatP2WPKH && format != FormatP2PKH {
		return nil, fmt.Errorf("unsupported address format %q", format)
	}

	key, err := hdkeychain.NewKeyFromString(xpub)
	if err != nil {
		return nil, fmt.Errorf("parse extended key: %w", err)
	}
	if key.IsPrivate() {
		return nil, errors.New("expected a public extended key, got a private one")
	}
	if !key.IsForNet(params) {
		return nil, fmt.Errorf("extended key does not belong to network %s", network)
	}

	branches := make(map[model.Branch]*hdkeychain.ExtendedKey, 2)
	for _, branch := range []model.Branch{model.BranchReceive, model.BranchChange} {
		child, err := key.Derive(uint32(branch))
		if err != nil {
			return nil, fmt.Errorf("derive %s branch key: %w", branch, err)
		}
		branches[branch] = child
	}

	return &Deriver{params: params, format: format, branches: branches}, nil
}

// Derive returns the address at branch/index.
func (d *Deriver) Derive(branch model.Branch, index uint32) (string, error) {
	parent, ok := d.branches[branch]
	if !ok {
		return "", fmt.Errorf("unknown branch %s", branch)
	}
	child, err := parent.Derive(index)
	if err != nil {
		return "", fmt.Errorf("derive %s/%d: %w", branch, index, err)
	}

	switch d.format {
	case FormatP2PKH:
		addr, err := child.Address(d.params)
		if err != nil {
			return "", fmt.Errorf("address for %s/%d: %w", branch, index, err)
		}
		return addr.EncodeAddress(), nil
	default:
		pub, err := child.ECPubKey()
		if err != nil {
			return "", fmt.Errorf("public key for %s/%d: %w", branch, index, err)
		}
		addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), d.params)
		if err != nil {
			return "", fmt.Errorf("address for %s/%d: %w", branch, index, err)
		}
		return addr.EncodeAddress(), nil
	}
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
