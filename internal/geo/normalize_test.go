package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCityName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"whitespace stripped", "  北京  ", "北京市"},
		{"internal whitespace collapsed", "乌鲁 木齐", "乌鲁木齐"},
		{"short name gets city suffix", "北京", "北京市"},
		{"existing suffix kept", "朝阳区", "朝阳区"},
		{"alias expanded", "喀什", "喀什地区"},
		{"municipal alias expanded", "喀什市", "喀什地区"},
		{"prefecture alias expanded", "阿勒泰", "阿勒泰地区"},
		{"autonomous prefecture alias", "伊宁市", "伊犁哈萨克自治州"},
		{"long name untouched", "呼和浩特", "呼和浩特"},
		{"autonomy marker blocks suffix", "某盟", "某盟"},
		{"non-chinese input untouched", "asdkjqwe123", "asdkjqwe123"},
		{"empty input stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCityName(tt.in))
		})
	}
}

func TestNormalizeCityNameDeterministic(t *testing.T) {
	for _, in := range []string{"北京", "喀什", " 丽江 ", "asdkjqwe123", ""} {
		assert.Equal(t, NormalizeCityName(in), NormalizeCityName(in))
	}
}
