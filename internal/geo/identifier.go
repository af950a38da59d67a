package geo

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// PureSyntheticPrefix marks identifiers fabricated from the name alone, with
// no region knowledge behind them.
const PureSyntheticPrefix = "99"

// RegionSyntheticID derives a stable identifier for a place that matched a
// macro-region but no authoritative source: 2-digit region prefix plus the
// first 8 hex digits of the content hash over name, region and climate type.
func RegionSyntheticID(name string, profile *RegionProfile) string {
	sum := md5.Sum([]byte(name + "_" + profile.Region + "_" + profile.Climate.Type))
	return RegionPrefix(profile.Region) + hex.EncodeToString(sum[:])[:8]
}

// PureSyntheticID derives the last-resort identifier from the name alone.
// Same name always yields the same id; the numeric body keeps the shape of a
// real weather code.
func PureSyntheticID(name string) string {
	sum := sha256.Sum256([]byte(name))
	n, err := strconv.ParseUint(hex.EncodeToString(sum[:])[:8], 16, 64)
	if err != nil {
		// Unreachable: the input is 8 hex digits by construction.
		n = 0
	}
	return fmt.Sprintf("%s%06d", PureSyntheticPrefix, n%1_000_000)
}

// IdentifierPrefix returns the leading 2 characters of an identifier, used to
// recover its region when no typed hint travelled with it.
func IdentifierPrefix(id string) string {
	if len(id) < 2 {
		return ""
	}
	return id[:2]
}
