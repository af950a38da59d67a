package geo

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/smart-weather/internal/cache"
)

// Provenance identifies the strategy that produced a resolution.
type Provenance string

const (
	ProvenanceGazetteer       Provenance = "gazetteer"
	ProvenanceCached          Provenance = "cached"
	ProvenanceRegionSynthetic Provenance = "region_synthetic"
	ProvenancePublicAPI       Provenance = "public_api"
	ProvenancePureSynthetic   Provenance = "pure_synthetic"
)

// Label returns the user-facing description of a provenance.
func (p Provenance) Label() string {
	switch p {
	case ProvenanceGazetteer:
		return "核心城市库"
	case ProvenanceCached:
		return "本地缓存"
	case ProvenanceRegionSynthetic:
		return "智能识别"
	case ProvenancePublicAPI:
		return "公开数据源"
	case ProvenancePureSynthetic:
		return "智能生成"
	default:
		return string(p)
	}
}

// Resolution is the outcome of resolving a place name: a stable identifier,
// the canonical name, and where the answer came from. Region is carried as a
// typed field so downstream generation never has to parse it out of a label.
type Resolution struct {
	CityID     string     `json:"city_id"`
	CityName   string     `json:"city_name"`
	Provenance Provenance `json:"provenance"`
	Region     string     `json:"region,omitempty"`
	Source     string     `json:"source"`
	TraceID    string     `json:"trace_id,omitempty"`
}

// Resolver turns arbitrary place names into stable identifiers through an
// ordered strategy chain. It never fails: the final strategy is a
// deterministic hash of the normalized name.
type Resolver struct {
	cache        *cache.TTLCache[Resolution]
	probes       []Probe
	probeTimeout time.Duration
}

// NewResolver creates a Resolver. The cache memoizes resolutions (the caller
// picks its TTL, typically 24h); probes may be empty.
func NewResolver(c *cache.TTLCache[Resolution], probes []Probe, probeTimeout time.Duration) *Resolver {
	if probeTimeout <= 0 {
		probeTimeout = 3 * time.Second
	}
	return &Resolver{
		cache:        c,
		probes:       probes,
		probeTimeout: probeTimeout,
	}
}

// Resolve runs the strategy chain for rawName. Strategies are tried in trust
// order: gazetteer, cache, region-synthetic, public probes, pure-synthetic.
func (r *Resolver) Resolve(ctx context.Context, rawName string) Resolution {
	normalized := NormalizeCityName(rawName)
	traceID := uuid.NewString()

	if id, ok := lookupGazetteer(normalized); ok {
		return Resolution{
			CityID:     id,
			CityName:   normalized,
			Provenance: ProvenanceGazetteer,
			Source:     ProvenanceGazetteer.Label(),
			TraceID:    traceID,
		}
	}

	if cached, ok := r.cache.Get(normalized); ok {
		log.Printf("resolver: cache hit for %q (trace %s)", normalized, traceID)
		cached.Provenance = ProvenanceCached
		cached.Source = fmt.Sprintf("%s(%s)", ProvenanceCached.Label(), cached.Source)
		cached.TraceID = traceID
		return cached
	}

	if profile := IdentifyRegion(normalized); profile != nil {
		res := Resolution{
			CityID:     RegionSyntheticID(normalized, profile),
			CityName:   normalized,
			Provenance: ProvenanceRegionSynthetic,
			Region:     profile.Region,
			Source:     fmt.Sprintf("%s[%s]", ProvenanceRegionSynthetic.Label(), profile.Region),
			TraceID:    traceID,
		}
		r.cache.Set(normalized, res)
		log.Printf("resolver: %q matched region %s (trace %s)", normalized, profile.Region, traceID)
		return res
	}

	if res, ok := r.tryProbes(ctx, normalized, traceID); ok {
		r.cache.Set(normalized, res)
		return res
	}

	res := Resolution{
		CityID:     PureSyntheticID(normalized),
		CityName:   normalized,
		Provenance: ProvenancePureSynthetic,
		Source:     ProvenancePureSynthetic.Label(),
		TraceID:    traceID,
	}
	r.cache.Set(normalized, res)
	log.Printf("resolver: generated stable id %s for %q (trace %s)", res.CityID, normalized, traceID)
	return res
}

// tryProbes asks each public endpoint in order; the first parseable answer
// wins. Probe failures only advance the chain, they are never surfaced.
func (r *Resolver) tryProbes(ctx context.Context, normalized, traceID string) (Resolution, bool) {
	for _, p := range r.probes {
		probeCtx, cancel := context.WithTimeout(ctx, r.probeTimeout)
		id, err := p.Lookup(probeCtx, normalized)
		cancel()

		if err != nil {
			log.Printf("resolver: probe %s failed for %q: %v (trace %s)", p.Name(), normalized, err, traceID)
			continue
		}
		if id == "" {
			continue
		}

		return Resolution{
			CityID:     id,
			CityName:   normalized,
			Provenance: ProvenancePublicAPI,
			Source:     fmt.Sprintf("%s(%s)", ProvenancePublicAPI.Label(), p.Name()),
			TraceID:    traceID,
		}, true
	}

	return Resolution{}, false
}
