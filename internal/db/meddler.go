package db

import (
	"database/sql"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

func init() {
	meddler.Default = meddler.SQLite

	meddler.Register("address", hexMeddler[common.Address]{
		parse:  common.HexToAddress,
		format: func(a common.Address) string { return strings.ToLower(a.Hex()) },
	})
	meddler.Register("hash", hexMeddler[common.Hash]{
		parse:  common.HexToHash,
		format: func(h common.Hash) string { return h.Hex() },
	})
	meddler.Register("bigint", BigIntMeddler{})
}

// hexMeddler stores fixed size go-ethereum values as hex TEXT columns.
// Addresses are written lowercase so that equality filters do not depend on checksum casing.
type hexMeddler[T comparable] struct {
	parse  func(string) T
	format func(T) string
}

func (h hexMeddler[T]) PreRead(fieldAddr any) (scanTarget any, err error) {
	return new(sql.NullString), nil
}

func (h hexMeddler[T]) PostRead(fieldAddr, scanTarget any) error {
	ns, ok := scanTarget.(*sql.NullString)
	if !ok {
		return fmt.Errorf("expected *sql.NullString, got %T", scanTarget)
	}

	switch ptr := fieldAddr.(type) {
	case **T:
		if !ns.Valid {
			*ptr = nil
			return nil
		}
		v := h.parse(ns.String)
		*ptr = &v
	case *T:
		var zero T
		if !ns.Valid {
			*ptr = zero
			return nil
		}
		*ptr = h.parse(ns.String)
	default:
		var zero T
		return fmt.Errorf("expected *%T or **%T, got %T", zero, zero, fieldAddr)
	}

	return nil
}

func (h hexMeddler[T]) PreWrite(field any) (saveValue any, err error) {
	switch v := field.(type) {
	case *T:
		if v == nil {
			return nil, nil
		}
		return h.format(*v), nil
	case T:
		return h.format(v), nil
	default:
		var zero T
		return nil, fmt.Errorf("expected %T or *%T, got %T", zero, zero, field)
	}
}

// BigIntMeddler stores *big.Int values as base 10 TEXT so uint256 amounts keep full precision.
type BigIntMeddler struct{}

func (b BigIntMeddler) PreRead(fieldAddr any) (scanTarget any, err error) {
	return new(sql.NullString), nil
}

func (b BigIntMeddler) PostRead(fieldAddr, scanTarget any) error {
	ns, ok := scanTarget.(*sql.NullString)
	if !ok {
		return fmt.Errorf("expected *sql.NullString, got %T", scanTarget)
	}

	ptr, ok := fieldAddr.(**big.Int)
	if !ok {
		return fmt.Errorf("expected **big.Int, got %T", fieldAddr)
	}

	if !ns.Valid || ns.String == "" {
		*ptr = nil
		return nil
	}

	v, ok := new(big.Int).SetString(ns.String, 10) //nolint:mnd
	if !ok {
		return fmt.Errorf("invalid big integer %q", ns.String)
	}
	*ptr = v

	return nil
}

func (b BigIntMeddler) PreWrite(field any) (saveValue any, err error) {
	v, ok := field.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("expected *big.Int, got %T", field)
	}
	if v == nil {
		return nil, nil
	}
	return v.String(), nil
}
