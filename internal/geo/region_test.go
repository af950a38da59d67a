package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyRegionBySignature(t *testing.T) {
	tests := []struct {
		in     string
		region string
	}{
		{"喀什地区", "新疆"},
		{"乌鲁木齐", "新疆"},
		{"日喀则市", "西藏"},
		{"香格里拉市", "云南"},
		{"九寨沟", "四川"},
		{"呼伦贝尔市", "内蒙古"},
		{"漠河市", "黑龙江"},
	}

	for _, tt := range tests {
		profile := IdentifyRegion(tt.in)
		require.NotNil(t, profile, "expected a region for %s", tt.in)
		assert.Equal(t, tt.region, profile.Region)
		assert.Equal(t, RegionBaseCity(tt.region), profile.BaseCity)
	}
}

func TestIdentifyRegionByKeywordHeuristic(t *testing.T) {
	// No signature mentions this prefecture, but the ethnic-group marker
	// places it in 甘肃.
	profile := IdentifyRegion("东乡族自治县")
	require.NotNil(t, profile)
	assert.Equal(t, "甘肃", profile.Region)

	// One-character province short form inside an autonomous division name.
	profile = IdentifyRegion("川西某地区")
	require.NotNil(t, profile)
	assert.Equal(t, "四川", profile.Region)
}

func TestIdentifyRegionNoMatch(t *testing.T) {
	assert.Nil(t, IdentifyRegion("asdkjqwe123"))
	assert.Nil(t, IdentifyRegion("某某镇"))
}

func TestRegionClimateDefaults(t *testing.T) {
	xj := RegionClimate("新疆")
	assert.True(t, xj.Dry)
	assert.Equal(t, -20, xj.TempMin)
	assert.Equal(t, 35, xj.TempMax)

	def := RegionClimate("不存在的地区")
	assert.Equal(t, "温带季风", def.Type)
	assert.True(t, def.Humid)
}

func TestRegionBaseCityDefault(t *testing.T) {
	assert.Equal(t, "乌鲁木齐", RegionBaseCity("新疆"))
	assert.Equal(t, "北京", RegionBaseCity("不存在的地区"))
}

// The reverse prefix table is derived from the forward one, so every region
// must round-trip through its prefix.
func TestRegionPrefixRoundTrip(t *testing.T) {
	for region, prefix := range regionPrefixes {
		got, ok := RegionForPrefix(prefix)
		require.True(t, ok, "prefix %s has no reverse entry", prefix)
		assert.Equal(t, region, got)
		assert.Equal(t, prefix, RegionPrefix(region))
	}

	assert.Equal(t, PureSyntheticPrefix, RegionPrefix("不存在的地区"))
	_, ok := RegionForPrefix(PureSyntheticPrefix)
	assert.False(t, ok)
}
