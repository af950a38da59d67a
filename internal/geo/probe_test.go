package geo

import (
	"context"
	"testing"
	"time"

	"github.com/kelvins/geocoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocoderProbeGridIdentifier(t *testing.T) {
	p := NewGeocoderProbe("test-key")
	p.geocode = func(geocoder.Address) (geocoder.Location, error) {
		return geocoder.Location{Latitude: 39.9042, Longitude: 116.4074}, nil
	}

	id, err := p.Lookup(context.Background(), "北京")
	require.NoError(t, err)
	assert.Equal(t, "90399164", id)
}

// A stalled geocode call must not outlive the per-probe deadline: the
// resolver's bounded-latency guarantee depends on every probe observing its
// context.
func TestGeocoderProbeHonorsContext(t *testing.T) {
	p := NewGeocoderProbe("test-key")

	block := make(chan struct{})
	p.geocode = func(geocoder.Address) (geocoder.Location, error) {
		<-block
		return geocoder.Location{}, nil
	}
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := p.Lookup(ctx, "未知自治旗")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second, "lookup must return once the deadline passes")
}
