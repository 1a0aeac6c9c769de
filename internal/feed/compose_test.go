package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func organicN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "o" + string(rune('a'+i))
	}
	return out
}

func TestComposeInsertsAfterEverySixth(t *testing.T) {
	organic := organicN(14)
	sponsored := []string{"s1", "s2", "s3"}

	got := Compose(organic, sponsored, DefaultCadence)

	assert.Len(t, got, 17)
	assert.Equal(t, "s1", got[6])
	assert.Equal(t, "s2", got[13])
	assert.Equal(t, "s3", got[16], "leftover sponsored appended")

	var gotOrganic, gotSponsored []string
	for _, v := range got {
		if v[0] == 's' {
			gotSponsored = append(gotSponsored, v)
		} else {
			gotOrganic = append(gotOrganic, v)
		}
	}
	assert.Equal(t, organic, gotOrganic)
	assert.Equal(t, sponsored, gotSponsored)
}

func TestComposeAppendsWhenOrganicShort(t *testing.T) {
	got := Compose([]string{"oa"}, []string{"s1", "s2"}, DefaultCadence)
	assert.Equal(t, []string{"oa", "s1", "s2"}, got)
}

func TestComposeExactMultiple(t *testing.T) {
	got := Compose(organicN(6), []string{"s1"}, DefaultCadence)
	assert.Equal(t, append(organicN(6), "s1"), got)
}

func TestComposeNoSponsored(t *testing.T) {
	organic := organicN(8)
	assert.Equal(t, organic, Compose(organic, nil, DefaultCadence))
}

func TestComposeMoreSponsoredThanSlots(t *testing.T) {
	got := Compose(organicN(7), []string{"s1", "s2", "s3"}, DefaultCadence)
	assert.Equal(t, []string{"oa", "ob", "oc", "od", "oe", "of", "s1", "og", "s2", "s3"}, got)
}

func TestComposeCustomCadence(t *testing.T) {
	got := Compose(organicN(4), []string{"s1", "s2"}, 2)
	assert.Equal(t, []string{"oa", "ob", "s1", "oc", "od", "s2"}, got)
}
